package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandOf(t *testing.T) {
	cases := map[float64]Band{
		100:   BandExceptional,
		80:    BandExceptional,
		79.99: BandStrong,
		60:    BandStrong,
		59:    BandModerate,
		40:    BandModerate,
		39.5:  BandLimited,
		20:    BandLimited,
		19:    BandWeak,
		0:     BandWeak,
	}
	for score, want := range cases {
		assert.Equal(t, want, BandOf(score), score)
	}
}

func TestWhyItFits_SameTextForSameBand(t *testing.T) {
	assert.Equal(t, "Exceptional match for your need for rest and recovery.", WhyItFits(Restorative, 95))
	assert.Equal(t, WhyItFits(Restorative, 81), WhyItFits(Restorative, 99))
	assert.NotEqual(t, WhyItFits(Restorative, 81), WhyItFits(Restorative, 79))
}

func TestTensionNote_Direction(t *testing.T) {
	assert.Equal(t,
		"Honest note: social energy is more pronounced here than your profile suggests (limited alignment).",
		TensionNote(SocialVibe, 25, 90, 15))
	assert.Equal(t,
		"Honest note: food culture is less pronounced here than your profile suggests (weak alignment).",
		TensionNote(Culinary, 5, 0, 95))
}

func TestMatchDestinations_Explanations(t *testing.T) {
	v := traveler()
	p := mirror("x", v)
	soc, _ := TravelerValue(v, SocialVibe)
	vis, _ := TravelerValue(v, Visual)
	p.Dimensions.Set(SocialVibe, soc+65)
	p.Dimensions.Set(Visual, vis-30)

	res := MatchDestinations(v, []DestinationProfile{p})

	require.Len(t, res, 1)
	assert.Equal(t, []string{
		"Exceptional match for your need for rest and recovery.",
		"Exceptional match for your need for challenge and accomplishment.",
		"Exceptional match for your need for cultural depth.",
	}, res[0].WhyItFits, "ties keep canonical dimension order")
	assert.Equal(t,
		"Honest note: social energy is more pronounced here than your profile suggests (limited alignment).",
		res[0].TensionNote)
}

func TestMatchDestinations_SingleDimensionHasNoTensionNote(t *testing.T) {
	p := DestinationProfile{ID: "one"}
	p.Dimensions.Set(Wellness, 60)

	res := MatchDestinations(traveler(), []DestinationProfile{p})

	require.Len(t, res, 1)
	assert.Len(t, res[0].WhyItFits, 1)
	assert.Empty(t, res[0].TensionNote)
}
