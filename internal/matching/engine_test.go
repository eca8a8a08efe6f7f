package matching

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulprint/internal/scoring"
)

func ptr(v float64) *float64 { return &v }

func traveler() scoring.TraitVector {
	return scoring.TraitVector{Scores: map[string]float64{
		"burnout":                  80,
		"overwhelm":                60,
		"adventure":                30,
		"openness":                 70,
		"clarity":                  50,
		"extraversion":             20,
		"connection":               40,
		"aliveness":                90,
		"spontaneity":              10,
		"water":                    100,
		"stone":                    50,
		"environmental_adaptation": 60,
		"transformation":           40,
		"conscientiousness":        70,
		"urban":                    0,
	}}
}

// mirror builds a destination whose matched dimensions equal the traveler's
// composites exactly.
func mirror(id string, v scoring.TraitVector) DestinationProfile {
	p := DestinationProfile{ID: id, Name: id}
	for _, d := range Dimensions {
		if tv, ok := TravelerValue(v, d); ok {
			p.Dimensions.Set(d, tv)
		}
	}
	p.Dimensions.Set(CulturalSensory, 3)
	return p
}

func TestTravelerValue_Composites(t *testing.T) {
	v := traveler()

	got, ok := TravelerValue(v, Achievement)
	require.True(t, ok)
	assert.Equal(t, 50.0, got)

	got, ok = TravelerValue(v, Nature)
	require.True(t, ok)
	assert.Equal(t, 70.0, got)

	_, ok = TravelerValue(v, CulturalSensory)
	assert.False(t, ok)

	partial := scoring.TraitVector{Scores: map[string]float64{"openness": 40}}
	got, ok = TravelerValue(partial, Achievement)
	require.True(t, ok)
	assert.Equal(t, 40.0, got, "only present traits are averaged")
}

func TestMatchDestinations_FitIs100AtEquality(t *testing.T) {
	v := traveler()

	res := MatchDestinations(v, []DestinationProfile{mirror("same", v)})

	require.Len(t, res, 1)
	assert.Equal(t, 100.0, res[0].FitScore)
	assert.Equal(t, 1, res[0].Rank)
	assert.Len(t, res[0].Breakdown, 9)
	assert.NotContains(t, res[0].Breakdown, CulturalSensory)
	for d, c := range res[0].Breakdown {
		assert.Equal(t, 100.0, c, d)
	}
}

func TestMatchDestinations_Monotonic(t *testing.T) {
	v := traveler()
	base, _ := TravelerValue(v, Cultural)

	prevFit := 101.0
	prevContrib := 101.0
	for delta := 0.0; base+delta <= 100; delta += 5 {
		p := mirror("x", v)
		p.Dimensions.Set(Cultural, base+delta)

		res := MatchDestinations(v, []DestinationProfile{p})
		require.Len(t, res, 1)

		assert.LessOrEqual(t, res[0].FitScore, prevFit)
		assert.LessOrEqual(t, res[0].Breakdown[Cultural], prevContrib)
		assert.InDelta(t, 100-delta, res[0].Breakdown[Cultural], 1e-9)
		prevFit = res[0].FitScore
		prevContrib = res[0].Breakdown[Cultural]
	}
}

func TestMatchDestinations_RankingAndTieBreak(t *testing.T) {
	v := traveler()
	good := mirror("m-good", v)
	twinB := mirror("b-twin", v)
	twinA := mirror("a-twin", v)
	twinA.Dimensions.Set(Restorative, 0)
	twinB.Dimensions.Set(Restorative, 0)

	for i := 0; i < 3; i++ {
		res := MatchDestinations(v, []DestinationProfile{twinB, good, twinA})

		require.Len(t, res, 3)
		assert.Equal(t, []string{"m-good", "a-twin", "b-twin"}, ids(res))
		assert.Equal(t, []int{1, 2, 3}, []int{res[0].Rank, res[1].Rank, res[2].Rank})
		assert.Equal(t, res[1].FitScore, res[2].FitScore)
	}
}

func TestMatchDestinations_EmptyInputs(t *testing.T) {
	v := traveler()

	res := MatchDestinations(v, nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	res = MatchDestinations(scoring.TraitVector{}, []DestinationProfile{mirror("a", v)})
	assert.Empty(t, res)
}

func TestMatchDestinations_NullDimensionsAreExcluded(t *testing.T) {
	v := traveler()
	rest, _ := TravelerValue(v, Restorative)

	p := DestinationProfile{ID: "sparse"}
	p.Dimensions.Set(Restorative, rest-30)

	res := MatchDestinations(v, []DestinationProfile{p})

	require.Len(t, res, 1)
	assert.Equal(t, map[Dimension]float64{Restorative: 70}, res[0].Breakdown)
	assert.Equal(t, 70.0, res[0].FitScore, "average over available dimensions only")
}

func TestMatchDestinations_NoSharedDimensions(t *testing.T) {
	p := DestinationProfile{ID: "blank"}
	p.Dimensions.Set(CulturalSensory, 90)

	res := MatchDestinations(traveler(), []DestinationProfile{p})

	require.Len(t, res, 1)
	assert.Equal(t, 0.0, res[0].FitScore)
	assert.Empty(t, res[0].Breakdown)
	assert.Empty(t, res[0].WhyItFits)
	assert.Empty(t, res[0].TensionNote)
}

func TestMatchDestinations_PrimaryDimensionsWeighDouble(t *testing.T) {
	v := traveler()
	rest, _ := TravelerValue(v, Restorative)
	cult, _ := TravelerValue(v, Cultural)

	p := DestinationProfile{ID: "p", PrimaryDimensions: []Dimension{Restorative}}
	p.Dimensions.Set(Restorative, rest)
	p.Dimensions.Set(Cultural, cult-50)

	res := MatchDestinations(v, []DestinationProfile{p})

	require.Len(t, res, 1)
	assert.Equal(t, 83.33, res[0].FitScore)

	p.PrimaryDimensions = nil
	res = MatchDestinations(v, []DestinationProfile{p})
	assert.Equal(t, 75.0, res[0].FitScore)
}

func TestMatchDestinations_Deterministic(t *testing.T) {
	v := traveler()
	catalog := []DestinationProfile{mirror("a", v), mirror("b", v)}
	catalog[1].Dimensions.Set(Visual, 10)

	first := MatchDestinations(v, catalog)
	second := MatchDestinations(v, catalog)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ (-first +second):\n%s", diff)
	}
	for _, r := range first {
		assert.GreaterOrEqual(t, r.FitScore, 0.0)
		assert.LessOrEqual(t, r.FitScore, 100.0)
	}
}

func TestDimensionScores_Vector(t *testing.T) {
	var s DimensionScores
	s.Set(Restorative, 10)
	s.Set(LuxuryStyle, 90)
	s.Clear(LuxuryStyle)

	vec := s.Vector()

	require.Len(t, vec, len(Dimensions))
	assert.Equal(t, float32(10), vec[0])
	for _, x := range vec[1:] {
		assert.Equal(t, float32(50), x)
	}
}

func TestDestinationProfile_RejectsUnknownPrimaryDimension(t *testing.T) {
	var p DestinationProfile
	err := json.Unmarshal([]byte(`{"id":"x","name":"X","primary_dimensions":["nightlife"]}`), &p)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":"x","name":"X","dimensions":{"nature":70},"primary_dimensions":["nature"]}`), &p)
	require.NoError(t, err)
	got, ok := p.Dimensions.Get(Nature)
	assert.True(t, ok)
	assert.Equal(t, 70.0, got)
	_, ok = p.Dimensions.Get(Visual)
	assert.False(t, ok)
}

func ids(res []MatchResult) []string {
	out := make([]string, 0, len(res))
	for _, r := range res {
		out = append(out, r.DestinationID)
	}
	return out
}
