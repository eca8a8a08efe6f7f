package narrative

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulprint/internal/matching"
	"soulprint/internal/scoring"
)

func sampleTraits() scoring.TraitVector {
	return scoring.TraitVector{
		Scores: map[string]float64{
			"extraversion":   80,
			"openness":       65,
			"adventure":      40,
			"fire":           100,
			"desert":         0,
			"clarity":        70,
			"burnout":        90,
			"tension_social": 15,
		},
		Labels: map[string]string{
			"life_phase":                "transition",
			scoring.LabelTopMotivation1: "clarity",
			scoring.LabelTopMotivation2: "connection",
		},
	}
}

func sampleMatches() []matching.MatchResult {
	return []matching.MatchResult{
		{DestinationID: "kyoto", DestinationName: "Kyoto", FitScore: 88, Rank: 1, WhyItFits: []string{"a"}},
		{DestinationID: "lisbon", DestinationName: "Lisbon", FitScore: 80, Rank: 2},
		{DestinationID: "oaxaca", DestinationName: "Oaxaca", FitScore: 72, Rank: 3},
		{DestinationID: "reykjavik", DestinationName: "Reykjavik", FitScore: 60, Rank: 4},
	}
}

func TestBuildPayload_GroupsTraits(t *testing.T) {
	p := BuildPayload("r1", nil, sampleTraits(), sampleMatches(), TripContext{TripLength: 7}, 0)

	assert.Equal(t, map[string]float64{"extraversion": 80, "openness": 65}, p.BigFive)
	assert.Equal(t, map[string]float64{"adventure": 40}, p.TravelBehavior)
	assert.Equal(t, map[string]float64{"fire": 100, "desert": 0}, p.Elemental)
	assert.Equal(t, map[string]float64{"clarity": 70}, p.Motivation)
	assert.Equal(t, map[string]float64{"burnout": 90}, p.Burden)
	assert.Equal(t, map[string]float64{"tension_social": 15}, p.Tensions)
	assert.Equal(t, map[string]string{"life_phase": "transition"}, p.LifeContext)
	assert.Equal(t, []string{"clarity", "connection"}, p.TopMotivations)
	assert.Equal(t, 7, p.Trip.TripLength)
	assert.Equal(t, scoring.DefaultConfig().Version, p.ConfigVersion)
}

func TestBuildPayload_LimitsMatches(t *testing.T) {
	p := BuildPayload("r1", nil, sampleTraits(), sampleMatches(), TripContext{}, 0)
	require.Len(t, p.TopMatches, DefaultMatchesLimit)
	assert.Equal(t, "kyoto", p.TopMatches[0].DestinationID)

	p = BuildPayload("r1", nil, sampleTraits(), sampleMatches(), TripContext{}, 10)
	assert.Len(t, p.TopMatches, 4)
}

func TestBuildPayload_FieldNames(t *testing.T) {
	raw, err := json.Marshal(BuildPayload("r1", nil, scoring.TraitVector{}, nil, TripContext{}, 0))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, k := range []string{
		"respondent_id", "config_version", "big_five", "travel_behavior",
		"elemental_resonance", "inner_motivation", "emotional_burden",
		"tensions", "life_context", "top_motivations", "top_matches", "trip_context",
	} {
		assert.Contains(t, doc, k)
	}
	assert.JSONEq(t, `[]`, string(doc["top_matches"]))
}

func TestBuildPrompt_EmbedsPayload(t *testing.T) {
	prompt, err := BuildPrompt(BuildPayload("r1", nil, sampleTraits(), sampleMatches(), TripContext{AvoidNotes: "no cruises"}, 1))
	require.NoError(t, err)
	assert.Contains(t, prompt, `"respondent_id": "r1"`)
	assert.Contains(t, prompt, `"avoid_notes": "no cruises"`)
	assert.Contains(t, prompt, "Kyoto")
	assert.NotContains(t, prompt, "Lisbon")
}

func TestParse(t *testing.T) {
	raw := "Here you go:\n```json\n{\"headline\": \" Slow down \", \"sections\": [{\"title\": \"Why Kyoto\", \"body\": \"Quiet temples.\"}, {\"title\": \"x\", \"body\": \"  \"}]}\n```"

	n, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Slow down", n.Headline)
	assert.Equal(t, []Section{{Title: "Why Kyoto", Body: "Quiet temples."}}, n.Sections)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("not json at all")
	assert.Error(t, err)

	_, err = Parse(`{"headline": "h", "sections": []}`)
	assert.ErrorIs(t, err, ErrEmptyNarrative)
}
