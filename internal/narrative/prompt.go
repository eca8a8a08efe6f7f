package narrative

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"soulprint/pkg/utils"
)

var ErrEmptyNarrative = errors.New("narrative has no sections")

const promptTemplate = `You are a travel psychologist writing for one traveler.
The traveler's SoulPrint profile is the JSON document below. Scores run from 0 to 100.

%s

Write a short personal narrative grounded only in this profile.
- Refer to the top_matches by name and keep their order.
- Mention at most one tension from "tensions" and say how a trip can hold it.
- Respect trip_context.avoid_notes when present.
- Do not invent scores or destinations.

Answer with JSON only, in exactly this shape:
{"headline": "one sentence", "sections": [{"title": "...", "body": "..."}]}`

// BuildPrompt renders the payload into the model prompt.
func BuildPrompt(p Payload) (string, error) {
	doc, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("narrative: encode payload: %w", err)
	}
	return fmt.Sprintf(promptTemplate, doc), nil
}

type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Narrative struct {
	Headline string    `json:"headline"`
	Sections []Section `json:"sections"`
}

// Parse extracts the narrative object from a raw model answer. Sections with
// an empty body are dropped.
func Parse(raw string) (Narrative, error) {
	var n Narrative
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &n); err != nil {
		return Narrative{}, fmt.Errorf("narrative: decode answer: %w", err)
	}

	kept := n.Sections[:0]
	for _, s := range n.Sections {
		s.Title = strings.TrimSpace(s.Title)
		s.Body = strings.TrimSpace(s.Body)
		if s.Body == "" {
			continue
		}
		kept = append(kept, s)
	}
	n.Sections = kept
	n.Headline = strings.TrimSpace(n.Headline)

	if len(n.Sections) == 0 {
		return Narrative{}, ErrEmptyNarrative
	}
	return n, nil
}
