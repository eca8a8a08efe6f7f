package scoring

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed scoring.yaml
var defaultConfigYAML []byte

// Item is one slider feeding an averaged trait.
type Item struct {
	Question string `yaml:"question"`
	Reverse  bool   `yaml:"reverse"`
}

// ItemTrait is a trait computed as the mean of its items.
type ItemTrait struct {
	Trait string `yaml:"trait"`
	Group string `yaml:"group"`
	Items []Item `yaml:"items"`
}

// ElementalConfig describes the ranked landscape question.
type ElementalConfig struct {
	Question string   `yaml:"question"`
	Tokens   []string `yaml:"tokens"`
}

// DirectTrait is read one-to-one from a slider or a sub-slider field.
type DirectTrait struct {
	Trait    string `yaml:"trait"`
	Group    string `yaml:"group"`
	Question string `yaml:"question"`
	Field    string `yaml:"field"`
}

// TensionPair defines a tension score as the spread between two traits.
type TensionPair struct {
	Trait string `yaml:"trait"`
	A     string `yaml:"a"`
	B     string `yaml:"b"`
}

// LabelField passes a single-select answer through unchanged.
type LabelField struct {
	Label    string `yaml:"label"`
	Question string `yaml:"question"`
}

// Section is one questionnaire wizard step.
type Section struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Questions []string `yaml:"questions" json:"questions"`
}

// Config is the scoring table: which items make up which trait and how.
type Config struct {
	Version     string          `yaml:"version"`
	Neutral     float64         `yaml:"neutral"`
	Sections    []Section       `yaml:"sections"`
	ItemTraits  []ItemTrait     `yaml:"item_traits"`
	Elemental   ElementalConfig `yaml:"elemental"`
	Direct      []DirectTrait   `yaml:"direct"`
	Motivations []string        `yaml:"motivations"`
	Tensions    []TensionPair   `yaml:"tensions"`
	Labels      []LabelField    `yaml:"labels"`
}

// fixedItemCounts pins the questionnaire's averaged traits to the number of
// items their questions carry. Traits not listed here may use any count.
var fixedItemCounts = map[string]int{
	"extraversion":             4,
	"openness":                 4,
	"conscientiousness":        4,
	"agreeableness":            4,
	"emotional_stability":      4,
	"spontaneity":              4,
	"adventure":                3,
	"environmental_adaptation": 3,
}

var (
	defaultOnce   sync.Once
	defaultConfig *Config
)

// DefaultConfig returns the embedded scoring table. It is parsed once.
func DefaultConfig() *Config {
	defaultOnce.Do(func() {
		cfg, err := ParseConfig(defaultConfigYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded scoring config: %v", err))
		}
		defaultConfig = cfg
	})
	return defaultConfig
}

// LoadConfig reads a scoring table from a YAML file. An empty path yields
// the embedded default.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML scoring table.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scoring config: %w", err)
	}
	if cfg.Neutral == 0 {
		cfg.Neutral = 50
	}
	for i := range cfg.Elemental.Tokens {
		cfg.Elemental.Tokens[i] = normalizeToken(cfg.Elemental.Tokens[i])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every trait is defined once, that the questionnaire's
// averaged traits carry their fixed item counts, and that every tension
// refers to a trait computed before it.
func (c *Config) Validate() error {
	if c.Neutral < 0 || c.Neutral > 100 {
		return errors.New("scoring config: neutral must be within 0..100")
	}

	known := make(map[string]struct{})
	define := func(name string) error {
		if strings.TrimSpace(name) == "" {
			return errors.New("scoring config: empty trait name")
		}
		if _, dup := known[name]; dup {
			return fmt.Errorf("scoring config: trait %q defined twice", name)
		}
		known[name] = struct{}{}
		return nil
	}

	for _, t := range c.ItemTraits {
		if err := define(t.Trait); err != nil {
			return err
		}
		if len(t.Items) == 0 {
			return fmt.Errorf("scoring config: trait %q has no items", t.Trait)
		}
		if want, ok := fixedItemCounts[t.Trait]; ok && len(t.Items) != want {
			return fmt.Errorf("scoring config: trait %q needs %d items, got %d", t.Trait, want, len(t.Items))
		}
		seen := make(map[string]struct{}, len(t.Items))
		for _, it := range t.Items {
			if it.Question == "" {
				return fmt.Errorf("scoring config: trait %q has an item without a question", t.Trait)
			}
			if _, dup := seen[it.Question]; dup {
				return fmt.Errorf("scoring config: trait %q lists %q twice", t.Trait, it.Question)
			}
			seen[it.Question] = struct{}{}
		}
	}

	if len(c.Elemental.Tokens) < 2 {
		return errors.New("scoring config: elemental ranking needs at least two tokens")
	}
	for _, tok := range c.Elemental.Tokens {
		if err := define(tok); err != nil {
			return err
		}
	}

	for _, d := range c.Direct {
		if err := define(d.Trait); err != nil {
			return err
		}
		if d.Question == "" {
			return fmt.Errorf("scoring config: trait %q has no question", d.Trait)
		}
	}

	for _, m := range c.Motivations {
		if _, ok := known[m]; !ok {
			return fmt.Errorf("scoring config: motivation %q is not a trait", m)
		}
	}

	for _, p := range c.Tensions {
		for _, ref := range []string{p.A, p.B} {
			if _, ok := known[ref]; !ok {
				return fmt.Errorf("scoring config: tension %q refers to unknown trait %q", p.Trait, ref)
			}
		}
		if err := define(p.Trait); err != nil {
			return err
		}
	}
	return nil
}

// TraitNames lists every numeric trait in computation order.
func (c *Config) TraitNames() []string {
	var names []string
	for _, t := range c.ItemTraits {
		names = append(names, t.Trait)
	}
	names = append(names, c.Elemental.Tokens...)
	for _, d := range c.Direct {
		names = append(names, d.Trait)
	}
	for _, p := range c.Tensions {
		names = append(names, p.Trait)
	}
	return names
}

// Section returns the section with the given id.
func (c *Config) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
