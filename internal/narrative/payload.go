// Package narrative shapes a respondent's profile into the structured input
// of the AI narrative service and parses what comes back.
package narrative

import (
	"soulprint/internal/matching"
	"soulprint/internal/scoring"
)

// Payload field names are the contract with the prompt template. Renaming a
// json tag here breaks the prompt.
type Payload struct {
	RespondentID   string             `json:"respondent_id"`
	ConfigVersion  string             `json:"config_version"`
	BigFive        map[string]float64 `json:"big_five"`
	TravelBehavior map[string]float64 `json:"travel_behavior"`
	Elemental      map[string]float64 `json:"elemental_resonance"`
	Motivation     map[string]float64 `json:"inner_motivation"`
	Burden         map[string]float64 `json:"emotional_burden"`
	Tensions       map[string]float64 `json:"tensions"`
	LifeContext    map[string]string  `json:"life_context"`
	TopMotivations []string           `json:"top_motivations"`
	TopMatches     []MatchSummary     `json:"top_matches"`
	Trip           TripContext        `json:"trip_context"`
}

type MatchSummary struct {
	DestinationID string   `json:"destination_id"`
	Name          string   `json:"name"`
	FitScore      float64  `json:"fit_score"`
	Rank          int      `json:"rank"`
	WhyItFits     []string `json:"why_it_fits"`
	TensionNote   string   `json:"tension_note,omitempty"`
}

type TripContext struct {
	TravelDates string `json:"travel_dates,omitempty"`
	TripLength  int    `json:"trip_length_days,omitempty"`
	Intentions  string `json:"intentions,omitempty"`
	AvoidNotes  string `json:"avoid_notes,omitempty"`
}

const DefaultMatchesLimit = 3

// BuildPayload groups the vector's scores the way the scoring table groups
// them. Traits absent from the vector are left out rather than defaulted.
// matches are expected in rank order; at most limit are kept.
func BuildPayload(respondentID string, cfg *scoring.Config, traits scoring.TraitVector, matches []matching.MatchResult, trip TripContext, limit int) Payload {
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	if limit <= 0 {
		limit = DefaultMatchesLimit
	}

	p := Payload{
		RespondentID:   respondentID,
		ConfigVersion:  cfg.Version,
		BigFive:        map[string]float64{},
		TravelBehavior: map[string]float64{},
		Elemental:      map[string]float64{},
		Motivation:     map[string]float64{},
		Burden:         map[string]float64{},
		Tensions:       map[string]float64{},
		LifeContext:    map[string]string{},
		TopMotivations: []string{},
		TopMatches:     []MatchSummary{},
		Trip:           trip,
	}

	put := func(dst map[string]float64, trait string) {
		if v, ok := traits.Score(trait); ok {
			dst[trait] = v
		}
	}

	for _, t := range cfg.ItemTraits {
		switch t.Group {
		case "big_five":
			put(p.BigFive, t.Trait)
		default:
			put(p.TravelBehavior, t.Trait)
		}
	}
	for _, tok := range cfg.Elemental.Tokens {
		put(p.Elemental, tok)
	}
	for _, d := range cfg.Direct {
		switch d.Group {
		case "motivation":
			put(p.Motivation, d.Trait)
		case "burden":
			put(p.Burden, d.Trait)
		}
	}
	for _, t := range cfg.Tensions {
		put(p.Tensions, t.Trait)
	}

	for k, v := range traits.Labels {
		switch k {
		case scoring.LabelTopMotivation1, scoring.LabelTopMotivation2:
		default:
			p.LifeContext[k] = v
		}
	}
	for _, k := range []string{scoring.LabelTopMotivation1, scoring.LabelTopMotivation2} {
		if v, ok := traits.Labels[k]; ok && v != "" {
			p.TopMotivations = append(p.TopMotivations, v)
		}
	}

	for _, m := range matches {
		if len(p.TopMatches) == limit {
			break
		}
		p.TopMatches = append(p.TopMatches, MatchSummary{
			DestinationID: m.DestinationID,
			Name:          m.DestinationName,
			FitScore:      m.FitScore,
			Rank:          m.Rank,
			WhyItFits:     append([]string{}, m.WhyItFits...),
			TensionNote:   m.TensionNote,
		})
	}
	return p
}
