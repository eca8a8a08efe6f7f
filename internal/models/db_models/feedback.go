package db_models

import (
	"github.com/google/uuid"
)

// MatchFeedback is a respondent's rating of one matched destination.
type MatchFeedback struct {
	BaseModel
	RespondentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DestinationID string    `gorm:"type:varchar(64);not null;index"`
	Rating        int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"` // 1 to 5
	Comment       string    `gorm:"type:text"`
}
