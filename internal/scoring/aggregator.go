package scoring

import (
	"math"
	"strings"
)

// Label keys surfaced next to the numeric scores.
const (
	LabelTopMotivation1 = "top_motivation_1"
	LabelTopMotivation2 = "top_motivation_2"
)

// TraitVector is the aggregated profile of one respondent. Every score is
// within [0, 100]. Labels carry categorical pass-through answers.
type TraitVector struct {
	Scores map[string]float64 `json:"scores"`
	Labels map[string]string  `json:"labels,omitempty"`
}

// Score returns a trait score and whether it is present.
func (v TraitVector) Score(trait string) (float64, bool) {
	s, ok := v.Scores[trait]
	return s, ok
}

// Empty reports whether the vector carries no scores at all.
func (v TraitVector) Empty() bool {
	return len(v.Scores) == 0
}

// Aggregator computes trait vectors from a fixed scoring table.
type Aggregator struct {
	cfg *Config
}

// NewAggregator binds an aggregator to cfg. A nil cfg uses the embedded table.
func NewAggregator(cfg *Config) *Aggregator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Aggregator{cfg: cfg}
}

// Config returns the scoring table in use.
func (a *Aggregator) Config() *Config {
	return a.cfg
}

// ComputeTraits scores raw with the embedded table.
func ComputeTraits(raw RawResponse) TraitVector {
	return NewAggregator(nil).Compute(raw)
}

// Compute is total: missing or malformed answers count as neutral for the
// affected item only.
func (a *Aggregator) Compute(raw RawResponse) TraitVector {
	cfg := a.cfg
	scores := make(map[string]float64, len(cfg.TraitNames()))
	labels := make(map[string]string)

	for _, t := range cfg.ItemTraits {
		var sum float64
		for _, item := range t.Items {
			v, ok := a.answered(raw, item.Question, "")
			switch {
			case !ok:
				v = cfg.Neutral
			case item.Reverse:
				v = 100 - v
			}
			sum += v
		}
		scores[t.Trait] = clamp(sum / float64(len(t.Items)))
	}

	for tok, s := range a.elemental(raw) {
		scores[tok] = s
	}

	for _, d := range cfg.Direct {
		scores[d.Trait] = clamp(a.slider(raw, d.Question, d.Field))
	}

	for _, p := range cfg.Tensions {
		scores[p.Trait] = clamp(math.Abs(scores[p.A] - scores[p.B]))
	}

	if first, second := topTwo(cfg.Motivations, scores); first != "" {
		labels[LabelTopMotivation1] = first
		if second != "" {
			labels[LabelTopMotivation2] = second
		}
	}

	for _, l := range cfg.Labels {
		if c, ok := raw[l.Question].(Choice); ok {
			if s := strings.TrimSpace(string(c)); s != "" {
				labels[l.Label] = s
			}
		}
	}

	return TraitVector{Scores: scores, Labels: labels}
}

// slider reads one 0-100 value, falling back to neutral when it is missing
// or out of range.
func (a *Aggregator) slider(raw RawResponse, question, field string) float64 {
	if v, ok := a.answered(raw, question, field); ok {
		return v
	}
	return a.cfg.Neutral
}

// answered reports the value of one slider. field selects a sub-slider; when
// the answer under question is not a SubSliders group, "question.field" is
// tried as a plain slider.
func (a *Aggregator) answered(raw RawResponse, question, field string) (float64, bool) {
	if field == "" {
		s, ok := raw[question].(Slider)
		if !ok || !inRange(int(s)) {
			return 0, false
		}
		return float64(s), true
	}

	if group, ok := raw[question].(SubSliders); ok {
		v, ok := group[field]
		if !ok || !inRange(v) {
			return 0, false
		}
		return float64(v), true
	}
	return a.answered(raw, question+"."+field, "")
}

// elemental maps rank position i to 100 - i*100/(N-1). Anything other than
// a permutation of the configured tokens puts every element at neutral.
func (a *Aggregator) elemental(raw RawResponse) map[string]float64 {
	tokens := a.cfg.Elemental.Tokens
	out := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		out[tok] = a.cfg.Neutral
	}

	ranking, ok := raw[a.cfg.Elemental.Question].(Ranking)
	if !ok || len(ranking) != len(tokens) {
		return out
	}

	expected := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		expected[tok] = true
	}
	seen := make(map[string]bool, len(ranking))
	for _, r := range ranking {
		tok := normalizeToken(r)
		if !expected[tok] || seen[tok] {
			return out
		}
		seen[tok] = true
	}

	step := 100 / float64(len(tokens)-1)
	for i, r := range ranking {
		out[normalizeToken(r)] = clamp(100 - float64(i)*step)
	}
	return out
}

// topTwo returns the two highest-scoring names; earlier names win ties.
func topTwo(names []string, scores map[string]float64) (string, string) {
	first, second := "", ""
	for _, n := range names {
		s := scores[n]
		switch {
		case first == "" || s > scores[first]:
			second = first
			first = n
		case second == "" || s > scores[second]:
			second = n
		}
	}
	return first, second
}

func inRange(v int) bool {
	return v >= 0 && v <= 100
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
