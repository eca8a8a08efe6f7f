package request_models

import "soulprint/internal/scoring"

type StartSessionRequest struct {
	RespondentID string `json:"respondent_id,omitempty" validate:"omitempty,uuid"`
}

type RecordAnswersRequest struct {
	Answers scoring.RawResponse `json:"answers" validate:"required"`
}

type GenerateMatchesRequest struct {
	Region string `json:"region,omitempty"`
	Tier   string `json:"tier,omitempty"`
}

type CompareRequest struct {
	DestinationIDs []string `json:"destination_ids" validate:"required,min=2,dive,required"`
}

type NarrativeRequest struct {
	TravelDates  string `json:"travel_dates,omitempty" validate:"max=200"`
	TripLength   int    `json:"trip_length_days,omitempty" validate:"gte=0,lte=60"`
	Intentions   string `json:"intentions,omitempty" validate:"max=2000"`
	AvoidNotes   string `json:"avoid_notes,omitempty" validate:"max=2000"`
	MatchesLimit int    `json:"matches_limit,omitempty" validate:"gte=0,lte=10"`
}

type AddFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

// FeedbackFilter narrows the admin feedback list. Empty fields do not filter.
type FeedbackFilter struct {
	RespondentID  string `form:"respondent_id" validate:"omitempty,uuid"`
	DestinationID string `form:"destination_id" validate:"omitempty,max=64"`
	MaxRating     int    `form:"max_rating" validate:"gte=0,lte=5"`
}
