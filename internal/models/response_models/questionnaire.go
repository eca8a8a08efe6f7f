package response_models

import (
	"soulprint/internal/questionnaire"
	"soulprint/internal/scoring"
)

type SessionResponse struct {
	ID             string                          `json:"id"`
	RespondentID   string                          `json:"respondent_id"`
	Status         questionnaire.Status            `json:"status"`
	CurrentSection int                             `json:"current_section"`
	SectionCount   int                             `json:"section_count"`
	Section        scoring.Section                 `json:"section"`
	Progress       []questionnaire.SectionProgress `json:"progress"`
	Answers        scoring.RawResponse             `json:"answers"`
	SubmittedAt    string                          `json:"submitted_at,omitempty"`
}

type TraitResponse struct {
	RespondentID  string              `json:"respondent_id"`
	Traits        scoring.TraitVector `json:"traits"`
	Fingerprint   string              `json:"fingerprint"`
	ConfigVersion string              `json:"config_version"`
	UpdatedAt     string              `json:"updated_at,omitempty"`
	Unchanged     bool                `json:"unchanged"`
}

type RecomputeResponse struct {
	Traits  TraitResponse `json:"traits"`
	Matches int           `json:"matches"`
}
