// Package matching ranks destinations against a traveler's trait vector.
package matching

import (
	"encoding/json"
	"fmt"

	"soulprint/internal/scoring"
)

// Dimension names one destination-side character score.
type Dimension string

const (
	Restorative     Dimension = "restorative"
	Achievement     Dimension = "achievement"
	Cultural        Dimension = "cultural"
	SocialVibe      Dimension = "social_vibe"
	Visual          Dimension = "visual"
	Culinary        Dimension = "culinary"
	Nature          Dimension = "nature"
	CulturalSensory Dimension = "cultural_sensory"
	Wellness        Dimension = "wellness"
	LuxuryStyle     Dimension = "luxury_style"
)

// Dimensions is the canonical order used for ties and output.
var Dimensions = []Dimension{
	Restorative, Achievement, Cultural, SocialVibe, Visual,
	Culinary, Nature, CulturalSensory, Wellness, LuxuryStyle,
}

// travelerComposites maps each matched dimension to the traits whose mean is
// the traveler-side value. cultural_sensory has no traveler counterpart and
// is only shown in comparisons.
var travelerComposites = map[Dimension][]string{
	Restorative: {"burnout", "overwhelm"},
	Achievement: {"adventure", "openness"},
	Cultural:    {"openness", "clarity"},
	SocialVibe:  {"extraversion", "connection"},
	Visual:      {"openness", "aliveness"},
	Culinary:    {"openness", "spontaneity"},
	Nature:      {"water", "stone", "environmental_adaptation"},
	Wellness:    {"burnout", "transformation"},
	LuxuryStyle: {"conscientiousness", "urban"},
}

var phrases = map[Dimension]string{
	Restorative:     "rest and recovery",
	Achievement:     "challenge and accomplishment",
	Cultural:        "cultural depth",
	SocialVibe:      "social energy",
	Visual:          "visual beauty",
	Culinary:        "food culture",
	Nature:          "time in nature",
	CulturalSensory: "sensory immersion",
	Wellness:        "wellbeing and healing",
	LuxuryStyle:     "comfort and style",
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	_, ok := phrases[d]
	return ok
}

// Matched reports whether d has a traveler-side counterpart.
func (d Dimension) Matched() bool {
	_, ok := travelerComposites[d]
	return ok
}

func (d Dimension) phrase() string {
	if p, ok := phrases[d]; ok {
		return p
	}
	return string(d)
}

// ParseDimension accepts a dimension name or returns an error naming it.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q", s)
	}
	return d, nil
}

// TravelerValue returns the traveler-side composite for d: the mean of the
// contributing traits that are present in v.
func TravelerValue(v scoring.TraitVector, d Dimension) (float64, bool) {
	traits, ok := travelerComposites[d]
	if !ok {
		return 0, false
	}
	var sum float64
	var n int
	for _, t := range traits {
		if s, ok := v.Score(t); ok {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// DimensionScores holds the ten nullable destination scores. A nil field is
// unknown, not zero.
type DimensionScores struct {
	Restorative     *float64 `json:"restorative,omitempty" validate:"omitempty,gte=0,lte=100"`
	Achievement     *float64 `json:"achievement,omitempty" validate:"omitempty,gte=0,lte=100"`
	Cultural        *float64 `json:"cultural,omitempty" validate:"omitempty,gte=0,lte=100"`
	SocialVibe      *float64 `json:"social_vibe,omitempty" validate:"omitempty,gte=0,lte=100"`
	Visual          *float64 `json:"visual,omitempty" validate:"omitempty,gte=0,lte=100"`
	Culinary        *float64 `json:"culinary,omitempty" validate:"omitempty,gte=0,lte=100"`
	Nature          *float64 `json:"nature,omitempty" validate:"omitempty,gte=0,lte=100"`
	CulturalSensory *float64 `json:"cultural_sensory,omitempty" validate:"omitempty,gte=0,lte=100"`
	Wellness        *float64 `json:"wellness,omitempty" validate:"omitempty,gte=0,lte=100"`
	LuxuryStyle     *float64 `json:"luxury_style,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (s *DimensionScores) field(d Dimension) **float64 {
	switch d {
	case Restorative:
		return &s.Restorative
	case Achievement:
		return &s.Achievement
	case Cultural:
		return &s.Cultural
	case SocialVibe:
		return &s.SocialVibe
	case Visual:
		return &s.Visual
	case Culinary:
		return &s.Culinary
	case Nature:
		return &s.Nature
	case CulturalSensory:
		return &s.CulturalSensory
	case Wellness:
		return &s.Wellness
	case LuxuryStyle:
		return &s.LuxuryStyle
	}
	return nil
}

// Get returns the score for d, or false when it is null or d is unknown.
func (s DimensionScores) Get(d Dimension) (float64, bool) {
	f := s.field(d)
	if f == nil || *f == nil {
		return 0, false
	}
	return **f, true
}

// Set stores v for d. Unknown dimensions are ignored.
func (s *DimensionScores) Set(d Dimension, v float64) {
	if f := s.field(d); f != nil {
		*f = &v
	}
}

// Clear makes d null.
func (s *DimensionScores) Clear(d Dimension) {
	if f := s.field(d); f != nil {
		*f = nil
	}
}

// Vector returns the scores in canonical order with nulls as the neutral
// midpoint, for nearest-neighbour lookups.
func (s DimensionScores) Vector() []float32 {
	out := make([]float32, len(Dimensions))
	for i, d := range Dimensions {
		v, ok := s.Get(d)
		if !ok {
			v = 50
		}
		out[i] = float32(v)
	}
	return out
}

// DestinationProfile is one catalog entry.
type DestinationProfile struct {
	ID                string          `json:"id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Country           string          `json:"country,omitempty"`
	Region            string          `json:"region,omitempty"`
	Tier              string          `json:"tier,omitempty"`
	Active            bool            `json:"active"`
	Dimensions        DimensionScores `json:"dimensions"`
	PrimaryDimensions []Dimension     `json:"primary_dimensions,omitempty"`
	AvgDailyCost      *float64        `json:"avg_daily_cost,omitempty" validate:"omitempty,gte=0"`
	FlightHours       *float64        `json:"flight_hours,omitempty" validate:"omitempty,gte=0"`
	BestSeason        string          `json:"best_season,omitempty"`
	ClimateTags       []string        `json:"climate_tags,omitempty"`
	Highlights        []string        `json:"highlights,omitempty"`
	Description       string          `json:"description,omitempty"`
}

func (p DestinationProfile) isPrimary(d Dimension) bool {
	for _, pd := range p.PrimaryDimensions {
		if pd == d {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown primary dimensions so catalog typos surface
// at load time.
func (p *DestinationProfile) UnmarshalJSON(data []byte) error {
	type plain DestinationProfile
	var tmp plain
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	for _, d := range tmp.PrimaryDimensions {
		if !d.Valid() {
			return fmt.Errorf("destination %s: unknown primary dimension %q", tmp.ID, d)
		}
	}
	*p = DestinationProfile(tmp)
	return nil
}
