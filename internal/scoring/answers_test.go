package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawResponse_UnmarshalUntypedForm(t *testing.T) {
	body := `{
		"ext_1": 72,
		"life_phase": "rebuilding",
		"elemental_ranking": ["water", "fire", "stone", "urban", "desert"],
		"inner_motivation": {"clarity": 80, "aliveness": 61},
		"broken": {"clarity": "high"},
		"fractional": 12.5,
		"nothing": null
	}`

	var raw RawResponse
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	assert.Equal(t, Slider(72), raw["ext_1"])
	assert.Equal(t, Choice("rebuilding"), raw["life_phase"])
	assert.Equal(t, Ranking{"water", "fire", "stone", "urban", "desert"}, raw["elemental_ranking"])
	assert.Equal(t, SubSliders{"clarity": 80, "aliveness": 61}, raw["inner_motivation"])
	assert.Equal(t, SubSliders{}, raw["broken"], "bad fields are dropped one by one")
	assert.NotContains(t, raw, "fractional")
	assert.NotContains(t, raw, "nothing")
}

func TestRawResponse_SubSliderFieldsDecodeIndependently(t *testing.T) {
	body := `{"inner_motivation": {"transformation": 90, "clarity": "high", "aliveness": null, "connection": 10.5, "extra": 30}}`

	var raw RawResponse
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	assert.Equal(t, SubSliders{"transformation": 90, "extra": 30}, raw["inner_motivation"])
}

func TestRawResponse_MarshalIsCanonical(t *testing.T) {
	a := RawResponse{"b": Slider(1), "a": Choice("x"), "c": Ranking{"fire"}}
	b := RawResponse{"c": Ranking{"fire"}, "a": Choice("x"), "b": Slider(1)}

	ab, err := json.Marshal(a)
	require.NoError(t, err)
	bb, err := json.Marshal(b)
	require.NoError(t, err)

	assert.Equal(t, string(ab), string(bb))
	assert.JSONEq(t, `{"a":"x","b":1,"c":["fire"]}`, string(ab))
}

func TestRawResponse_CloneIsDeep(t *testing.T) {
	src := RawResponse{
		"r": Ranking{"fire", "water"},
		"s": SubSliders{"clarity": 10},
	}

	cp := src.Clone()
	cp["r"].(Ranking)[0] = "desert"
	cp["s"].(SubSliders)["clarity"] = 99

	assert.Equal(t, "fire", src["r"].(Ranking)[0])
	assert.Equal(t, 10, src["s"].(SubSliders)["clarity"])
}

func TestRawResponse_Merge(t *testing.T) {
	dst := RawResponse{"ext_1": Slider(10), "ext_2": Slider(20)}

	dst.Merge(RawResponse{"ext_2": Slider(90), "ext_3": Slider(30)})

	assert.Equal(t, RawResponse{"ext_1": Slider(10), "ext_2": Slider(90), "ext_3": Slider(30)}, dst)
}
