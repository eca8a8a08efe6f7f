package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"soulprint/internal/matching"
)

type MatchResult struct {
	BaseModel
	RespondentID  uuid.UUID                              `gorm:"type:uuid;not null;uniqueIndex:idx_match_respondent_destination"`
	DestinationID string                                 `gorm:"type:varchar(64);not null;uniqueIndex:idx_match_respondent_destination;index"`
	Destination   *Destination                           `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
	FitScore      float64                                `gorm:"not null"`
	Rank          int                                    `gorm:"not null"`
	Breakdown     datatypes.JSONType[map[string]float64] `gorm:"type:jsonb"`
	WhyItFits     pq.StringArray                         `gorm:"type:text[]"`
	TensionNote   string                                 `gorm:"type:text"`
}

func MatchFromResult(respondentID uuid.UUID, r matching.MatchResult) MatchResult {
	breakdown := make(map[string]float64, len(r.Breakdown))
	for d, v := range r.Breakdown {
		breakdown[string(d)] = v
	}
	return MatchResult{
		RespondentID:  respondentID,
		DestinationID: r.DestinationID,
		FitScore:      r.FitScore,
		Rank:          r.Rank,
		Breakdown:     datatypes.NewJSONType(breakdown),
		WhyItFits:     pq.StringArray(r.WhyItFits),
		TensionNote:   r.TensionNote,
	}
}

func (m *MatchResult) ToResult() matching.MatchResult {
	breakdown := map[matching.Dimension]float64{}
	for d, v := range m.Breakdown.Data() {
		breakdown[matching.Dimension(d)] = v
	}
	out := matching.MatchResult{
		DestinationID: m.DestinationID,
		FitScore:      m.FitScore,
		Breakdown:     breakdown,
		Rank:          m.Rank,
		WhyItFits:     append([]string{}, m.WhyItFits...),
		TensionNote:   m.TensionNote,
	}
	if m.Destination != nil {
		out.DestinationName = m.Destination.Name
	}
	return out
}
