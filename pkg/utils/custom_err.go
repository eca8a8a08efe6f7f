package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrSessionNotFound        = errors.New("questionnaire session not found")
	ErrRespondentNotFound     = errors.New("respondent not found")
	ErrTraitsNotComputed      = errors.New("trait vector not computed yet")
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrDestinationExists      = errors.New("destination already exists")
	ErrMatchNotFound          = errors.New("match not found")
	ErrNarrativeUnavailable   = errors.New("narrative generation is not configured")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI service")
)
