package response_models

import "soulprint/internal/matching"

type SimilarDestination struct {
	Destination matching.DestinationProfile `json:"destination"`
	Distance    float64                     `json:"distance"`
}

type NarrativeSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type NarrativeResponse struct {
	RespondentID string             `json:"respondent_id"`
	Model        string             `json:"model"`
	Headline     string             `json:"headline,omitempty"`
	Sections     []NarrativeSection `json:"sections"`
}
