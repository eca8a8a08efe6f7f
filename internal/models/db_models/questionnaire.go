package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionnaireSession struct {
	BaseModel
	RespondentID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	CurrentSection int            `gorm:"not null;default:0"`
	Status         string         `gorm:"type:varchar(20);not null;default:'in_progress'"`
	Answers        datatypes.JSON `gorm:"type:jsonb"`
	ConfigVersion  string         `gorm:"type:varchar(32)"`
	SubmittedAt    *int64
}

// ResponseSnapshot is the last submitted answer set of a respondent.
type ResponseSnapshot struct {
	BaseModel
	RespondentID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	SessionID     uuid.UUID      `gorm:"type:uuid;not null"`
	Answers       datatypes.JSON `gorm:"type:jsonb;not null"`
	Fingerprint   string         `gorm:"type:char(64);not null"`
	ConfigVersion string         `gorm:"type:varchar(32)"`
}

// TraitProfile is the stored trait vector, one row per respondent.
type TraitProfile struct {
	RespondentID  uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Scores        datatypes.JSONType[map[string]float64] `gorm:"type:jsonb;not null"`
	Labels        datatypes.JSONType[map[string]string]  `gorm:"type:jsonb"`
	Fingerprint   string                                 `gorm:"type:char(64);not null"`
	ConfigVersion string                                 `gorm:"type:varchar(32)"`
	CreatedAt     int64                                  `gorm:"autoCreateTime"`
	UpdatedAt     int64                                  `gorm:"autoUpdateTime"`
}
