package scoring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neutralBigFive() RawResponse {
	raw := RawResponse{}
	for _, t := range DefaultConfig().ItemTraits {
		for _, item := range t.Items {
			raw[item.Question] = Slider(50)
		}
	}
	return raw
}

func TestComputeTraits_NeutralBigFive(t *testing.T) {
	v := ComputeTraits(neutralBigFive())

	for _, trait := range []string{"extraversion", "openness", "conscientiousness", "agreeableness", "emotional_stability"} {
		assert.Equal(t, 50.0, v.Scores[trait], trait)
	}
}

func TestComputeTraits_ReverseScoredExtraversion(t *testing.T) {
	raw := RawResponse{
		"ext_1": Slider(80),
		"ext_2": Slider(80),
		"ext_3": Slider(80),
		"ext_4": Slider(20),
	}

	v := ComputeTraits(raw)

	assert.Equal(t, 80.0, v.Scores["extraversion"])
}

func TestComputeTraits_ReverseItemContributesInverted(t *testing.T) {
	base := neutralBigFive()

	for _, raw := range []int{0, 10, 35, 50, 90, 100} {
		r := base.Clone()
		r["con_2"] = Slider(raw)
		v := ComputeTraits(r)

		// three neutral items plus one reversed item
		want := (50*3 + float64(100-raw)) / 4
		assert.InDelta(t, want, v.Scores["conscientiousness"], 1e-9, "raw=%d", raw)
	}
}

func TestComputeTraits_MissingAndMalformedItemsAreNeutral(t *testing.T) {
	raw := RawResponse{
		"opn_1": Slider(100),
		"opn_2": Choice("yes"),
		"opn_3": Slider(140),
		// opn_4 missing
	}

	v := ComputeTraits(raw)

	// 100, 50, reverse(50)=50, 50
	assert.Equal(t, 62.5, v.Scores["openness"])
}

func TestComputeTraits_ElementalRanking(t *testing.T) {
	raw := RawResponse{"elemental_ranking": Ranking{"Fire", "Water", "Stone", "Urban", "Desert"}}

	v := ComputeTraits(raw)

	assert.Equal(t, 100.0, v.Scores["fire"])
	assert.Equal(t, 75.0, v.Scores["water"])
	assert.Equal(t, 50.0, v.Scores["stone"])
	assert.Equal(t, 25.0, v.Scores["urban"])
	assert.Equal(t, 0.0, v.Scores["desert"])
}

func TestComputeTraits_MalformedElementalRankingFallsBackToNeutral(t *testing.T) {
	cases := map[string]Answer{
		"too short":   Ranking{"fire", "water"},
		"duplicate":   Ranking{"fire", "fire", "stone", "urban", "desert"},
		"unknown":     Ranking{"fire", "water", "stone", "urban", "forest"},
		"wrong type":  Slider(40),
		"empty":       Ranking{},
		"extra token": Ranking{"fire", "water", "stone", "urban", "desert", "forest"},
	}

	for name, answer := range cases {
		t.Run(name, func(t *testing.T) {
			v := ComputeTraits(RawResponse{"elemental_ranking": answer})
			for _, tok := range []string{"fire", "water", "stone", "urban", "desert"} {
				assert.Equal(t, 50.0, v.Scores[tok], tok)
			}
		})
	}
}

func TestComputeTraits_DirectTraitsAndTopMotivations(t *testing.T) {
	raw := RawResponse{
		"inner_motivation": SubSliders{"transformation": 40, "clarity": 90, "aliveness": 90, "connection": 10},
		"emotional_burden": SubSliders{"overwhelm": 70, "uncertainty": 30, "burnout": 101},
	}

	v := ComputeTraits(raw)

	assert.Equal(t, 40.0, v.Scores["transformation"])
	assert.Equal(t, 90.0, v.Scores["clarity"])
	assert.Equal(t, 70.0, v.Scores["overwhelm"])
	assert.Equal(t, 50.0, v.Scores["burnout"], "out of range sub-slider is neutral")
	assert.Equal(t, 50.0, v.Scores["disconnection"], "missing sub-slider is neutral")

	// clarity and aliveness tie; clarity comes first in the canonical list
	assert.Equal(t, "clarity", v.Labels[LabelTopMotivation1])
	assert.Equal(t, "aliveness", v.Labels[LabelTopMotivation2])
}

func TestComputeTraits_MalformedSubSliderOnlyResetsThatItem(t *testing.T) {
	var raw RawResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"inner_motivation": {"transformation": 90, "clarity": "high", "aliveness": 70, "connection": null},
		"emotional_burden": {"overwhelm": 80, "burnout": null}
	}`), &raw))

	v := ComputeTraits(raw)

	assert.Equal(t, 90.0, v.Scores["transformation"])
	assert.Equal(t, 50.0, v.Scores["clarity"])
	assert.Equal(t, 70.0, v.Scores["aliveness"])
	assert.Equal(t, 50.0, v.Scores["connection"], "null is missing, not zero")
	assert.Equal(t, 80.0, v.Scores["overwhelm"])
	assert.Equal(t, 50.0, v.Scores["burnout"])
	assert.Equal(t, "transformation", v.Labels[LabelTopMotivation1])
	assert.Equal(t, "aliveness", v.Labels[LabelTopMotivation2])
}

func TestComputeTraits_DottedSliderFallback(t *testing.T) {
	raw := RawResponse{"inner_motivation.connection": Slider(85)}

	v := ComputeTraits(raw)

	assert.Equal(t, 85.0, v.Scores["connection"])
	assert.Equal(t, "connection", v.Labels[LabelTopMotivation1])
	assert.Equal(t, "transformation", v.Labels[LabelTopMotivation2])
}

func TestComputeTraits_TensionIsAbsoluteSpread(t *testing.T) {
	raw := RawResponse{
		"ext_1": Slider(100), "ext_2": Slider(100), "ext_3": Slider(100), "ext_4": Slider(0),
		"agr_1": Slider(20), "agr_2": Slider(20), "agr_3": Slider(20), "agr_4": Slider(80),
	}

	v := ComputeTraits(raw)

	assert.Equal(t, 100.0, v.Scores["extraversion"])
	assert.Equal(t, 20.0, v.Scores["agreeableness"])
	assert.Equal(t, 80.0, v.Scores["tension_social"])

	swapped := RawResponse{
		"ext_1": Slider(20), "ext_2": Slider(20), "ext_3": Slider(20), "ext_4": Slider(80),
		"agr_1": Slider(100), "agr_2": Slider(100), "agr_3": Slider(100), "agr_4": Slider(0),
	}
	assert.Equal(t, 80.0, ComputeTraits(swapped).Scores["tension_social"], "direction does not matter")
}

func TestComputeTraits_LabelsPassThrough(t *testing.T) {
	raw := RawResponse{
		"life_phase":      Choice("rebuilding"),
		"shift_desired":   Choice("slow_down"),
		"completion_need": Slider(30),
	}

	v := ComputeTraits(raw)

	assert.Equal(t, "rebuilding", v.Labels["life_phase"])
	assert.Equal(t, "slow_down", v.Labels["shift_desired"])
	_, ok := v.Labels["completion_need"]
	assert.False(t, ok, "non-choice answers are not labels")
}

func TestComputeTraits_EmptyInputProducesFullNeutralVector(t *testing.T) {
	v := ComputeTraits(nil)

	names := DefaultConfig().TraitNames()
	require.Len(t, v.Scores, len(names))
	for _, n := range names {
		s, ok := v.Score(n)
		require.True(t, ok, n)
		if strings.HasPrefix(n, "tension_") {
			assert.Equal(t, 0.0, s, n)
			continue
		}
		assert.Equal(t, 50.0, s, n)
	}
}

func TestComputeTraits_DeterministicAndInRange(t *testing.T) {
	raw := RawResponse{
		"ext_1": Slider(3), "ext_4": Slider(97), "opn_2": Slider(100), "con_2": Slider(0),
		"spn_1": Slider(61), "adv_3": Slider(12), "env_2": Slider(-5),
		"elemental_ranking": Ranking{"desert", "urban", "stone", "water", "fire"},
		"inner_motivation":  SubSliders{"transformation": 100, "clarity": 0},
		"emotional_burden":  SubSliders{"burnout": 100, "overwhelm": 0},
		"life_phase":        Choice("launching"),
	}

	first := ComputeTraits(raw)
	second := ComputeTraits(raw)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("recomputation differs (-first +second):\n%s", diff)
	}
	for name, s := range first.Scores {
		assert.GreaterOrEqual(t, s, 0.0, name)
		assert.LessOrEqual(t, s, 100.0, name)
	}
	assert.Equal(t, 100.0, first.Scores["desert"])
	assert.Equal(t, 0.0, first.Scores["fire"])
}

func TestComputeTraits_DoesNotMutateInput(t *testing.T) {
	raw := RawResponse{"elemental_ranking": Ranking{"Fire", "Water", "Stone", "Urban", "Desert"}}
	before := raw.Clone()

	ComputeTraits(raw)

	assert.Equal(t, before, raw)
}
