// Package scoring turns raw questionnaire answers into a normalized trait vector.
package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Answer is one questionnaire answer. The concrete types are Slider, Choice,
// Ranking and SubSliders; no other type implements it.
type Answer interface {
	isAnswer()
}

// Slider is a 0-100 slider value.
type Slider int

// Choice is a single-select token.
type Choice string

// Ranking is a totally ordered list of tokens, most preferred first.
type Ranking []string

// SubSliders groups several named sliders under one question.
type SubSliders map[string]int

func (Slider) isAnswer()     {}
func (Choice) isAnswer()     {}
func (Ranking) isAnswer()    {}
func (SubSliders) isAnswer() {}

// RawResponse maps question ids to answers.
type RawResponse map[string]Answer

// Clone returns a deep copy so a submitted snapshot cannot be mutated through
// the draft it came from.
func (r RawResponse) Clone() RawResponse {
	out := make(RawResponse, len(r))
	for k, v := range r {
		switch a := v.(type) {
		case Ranking:
			out[k] = append(Ranking(nil), a...)
		case SubSliders:
			cp := make(SubSliders, len(a))
			for sk, sv := range a {
				cp[sk] = sv
			}
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// Merge copies every answer from other into r, replacing existing keys.
func (r RawResponse) Merge(other RawResponse) {
	for k, v := range other.Clone() {
		r[k] = v
	}
}

// UnmarshalJSON accepts the untyped form the questionnaire UI posts:
// number -> Slider, string -> Choice, array of strings -> Ranking,
// object of numbers -> SubSliders. Values of any other shape are dropped,
// which the aggregator then treats as missing.
func (r *RawResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("raw response: %w", err)
	}
	out := make(RawResponse, len(raw))
	for key, msg := range raw {
		if a, ok := decodeAnswer(msg); ok {
			out[key] = a
		}
	}
	*r = out
	return nil
}

// MarshalJSON writes the untyped form with keys in sorted order, so equal
// responses always serialize to equal bytes.
func (r RawResponse) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeAnswer(msg json.RawMessage) (Answer, bool) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, false
		}
		return Choice(s), true
	case '[':
		var tokens []string
		if err := json.Unmarshal(trimmed, &tokens); err != nil {
			return nil, false
		}
		return Ranking(tokens), true
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, false
		}
		// Fields that are null or not whole numbers are left out, so only
		// that sub-item falls back to neutral.
		sub := make(SubSliders, len(fields))
		for k, field := range fields {
			if v, ok := decodeSlider(field); ok {
				sub[k] = int(v)
			}
		}
		return sub, true
	default:
		v, ok := decodeSlider(trimmed)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

// decodeSlider accepts a JSON number with no fractional part.
func decodeSlider(msg json.RawMessage) (Slider, bool) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return Slider(int(f)), true
}
