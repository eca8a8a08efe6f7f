package matching

import (
	"math"
	"sort"

	"soulprint/internal/scoring"
)

const primaryWeight = 2.0

// MatchResult is one ranked destination for a traveler.
type MatchResult struct {
	DestinationID   string                `json:"destination_id"`
	DestinationName string                `json:"destination_name,omitempty"`
	FitScore        float64               `json:"fit_score"`
	Breakdown       map[Dimension]float64 `json:"breakdown"`
	Rank            int                   `json:"rank"`
	WhyItFits       []string              `json:"why_it_fits"`
	TensionNote     string                `json:"tension_note,omitempty"`
}

// MatchDestinations scores every destination in catalog against traveler and
// returns them ranked by fit, ties broken by destination id. An empty catalog
// or an empty trait vector yields an empty result.
func MatchDestinations(traveler scoring.TraitVector, catalog []DestinationProfile) []MatchResult {
	if len(catalog) == 0 || traveler.Empty() {
		return []MatchResult{}
	}

	out := make([]MatchResult, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, scoreOne(traveler, p))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FitScore != out[j].FitScore {
			return out[i].FitScore > out[j].FitScore
		}
		return out[i].DestinationID < out[j].DestinationID
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func scoreOne(traveler scoring.TraitVector, p DestinationProfile) MatchResult {
	res := MatchResult{
		DestinationID:   p.ID,
		DestinationName: p.Name,
		Breakdown:       map[Dimension]float64{},
		WhyItFits:       []string{},
	}

	var contribs []contribution
	var sum, sumW float64
	for _, d := range Dimensions {
		dv, ok := p.Dimensions.Get(d)
		if !ok {
			continue
		}
		tv, ok := TravelerValue(traveler, d)
		if !ok {
			continue
		}
		c := Contribution(dv, tv)
		w := 1.0
		if p.isPrimary(d) {
			w = primaryWeight
		}
		sum += w * c
		sumW += w
		res.Breakdown[d] = round2(c)
		contribs = append(contribs, contribution{dim: d, score: c, destination: dv, traveler: tv})
	}

	if sumW > 0 {
		res.FitScore = round2(clamp(sum / sumW))
	}
	res.WhyItFits, res.TensionNote = explain(contribs)
	return res
}

// Contribution is the similarity of one destination score to the matching
// traveler score: 100 at equality, 0 at maximal divergence.
func Contribution(destination, traveler float64) float64 {
	return clamp(100 - math.Abs(destination-traveler))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
