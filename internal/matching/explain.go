package matching

import (
	"fmt"
	"sort"
)

// Band buckets a 0-100 score for explanation templates.
type Band string

const (
	BandExceptional Band = "exceptional"
	BandStrong      Band = "strong"
	BandModerate    Band = "moderate"
	BandLimited     Band = "limited"
	BandWeak        Band = "weak"
)

func BandOf(score float64) Band {
	switch {
	case score >= 80:
		return BandExceptional
	case score >= 60:
		return BandStrong
	case score >= 40:
		return BandModerate
	case score >= 20:
		return BandLimited
	default:
		return BandWeak
	}
}

var whyTemplates = map[Band]string{
	BandExceptional: "Exceptional match for your need for %s.",
	BandStrong:      "Strong match for your need for %s.",
	BandModerate:    "Moderate match for your need for %s.",
	BandLimited:     "Limited match for your need for %s.",
	BandWeak:        "Weak match for your need for %s.",
}

const tensionTemplate = "Honest note: %s is %s here than your profile suggests (%s alignment)."

const maxWhy = 3

type contribution struct {
	dim         Dimension
	score       float64
	destination float64
	traveler    float64
}

// WhyItFits renders the sentence for one dimension and contribution.
func WhyItFits(d Dimension, score float64) string {
	return fmt.Sprintf(whyTemplates[BandOf(score)], d.phrase())
}

// TensionNote renders the honest note for one dimension. The direction says
// whether the destination sits above or below the traveler.
func TensionNote(d Dimension, score, destination, traveler float64) string {
	direction := "less pronounced"
	if destination > traveler {
		direction = "more pronounced"
	}
	return fmt.Sprintf(tensionTemplate, d.phrase(), direction, BandOf(score))
}

// explain picks the three strongest contributions and the weakest one.
// contribs must be in canonical dimension order; ties keep that order.
// With a single dimension there is nothing to contrast, so no tension note.
func explain(contribs []contribution) ([]string, string) {
	why := []string{}
	if len(contribs) == 0 {
		return why, ""
	}

	byScore := append([]contribution(nil), contribs...)
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].score > byScore[j].score })
	for i := 0; i < len(byScore) && i < maxWhy; i++ {
		why = append(why, WhyItFits(byScore[i].dim, byScore[i].score))
	}

	if len(contribs) < 2 {
		return why, ""
	}
	low := contribs[0]
	for _, c := range contribs[1:] {
		if c.score < low.score {
			low = c
		}
	}
	return why, TensionNote(low.dim, low.score, low.destination, low.traveler)
}
