package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"soulprint/internal/matching"
)

// Destination is a catalog entry. Dimension columns are nullable; a NULL
// score is unknown and never treated as zero.
type Destination struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(200);not null"`
	Country     string `gorm:"type:varchar(100)"`
	Region      string `gorm:"type:varchar(100);index"`
	Tier        string `gorm:"type:varchar(50);index"`
	Active      bool   `gorm:"not null;default:true;index"`
	Description string `gorm:"type:text"`
	BestSeason  string `gorm:"type:varchar(100)"`

	Restorative     *float64
	Achievement     *float64
	Cultural        *float64
	SocialVibe      *float64
	Visual          *float64
	Culinary        *float64
	Nature          *float64
	CulturalSensory *float64
	Wellness        *float64
	LuxuryStyle     *float64

	PrimaryDimensions pq.StringArray `gorm:"type:text[]"`
	ClimateTags       pq.StringArray `gorm:"type:text[]"`
	Highlights        pq.StringArray `gorm:"type:text[]"`
	AvgDailyCost      *float64
	FlightHours       *float64

	ProfileVector pgvector.Vector `gorm:"type:vector(10)"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

// BeforeSave keeps the profile vector in step with the dimension columns.
func (d *Destination) BeforeSave(tx *gorm.DB) error {
	d.ProfileVector = pgvector.NewVector(d.scores().Vector())
	return nil
}

func (d *Destination) scores() matching.DimensionScores {
	return matching.DimensionScores{
		Restorative:     d.Restorative,
		Achievement:     d.Achievement,
		Cultural:        d.Cultural,
		SocialVibe:      d.SocialVibe,
		Visual:          d.Visual,
		Culinary:        d.Culinary,
		Nature:          d.Nature,
		CulturalSensory: d.CulturalSensory,
		Wellness:        d.Wellness,
		LuxuryStyle:     d.LuxuryStyle,
	}
}

func (d *Destination) ToProfile() matching.DestinationProfile {
	primary := make([]matching.Dimension, 0, len(d.PrimaryDimensions))
	for _, p := range d.PrimaryDimensions {
		primary = append(primary, matching.Dimension(p))
	}
	return matching.DestinationProfile{
		ID:                d.ID,
		Name:              d.Name,
		Country:           d.Country,
		Region:            d.Region,
		Tier:              d.Tier,
		Active:            d.Active,
		Dimensions:        d.scores(),
		PrimaryDimensions: primary,
		AvgDailyCost:      d.AvgDailyCost,
		FlightHours:       d.FlightHours,
		BestSeason:        d.BestSeason,
		ClimateTags:       []string(d.ClimateTags),
		Highlights:        []string(d.Highlights),
		Description:       d.Description,
	}
}

func DestinationFromProfile(p matching.DestinationProfile) *Destination {
	primary := make(pq.StringArray, 0, len(p.PrimaryDimensions))
	for _, d := range p.PrimaryDimensions {
		primary = append(primary, string(d))
	}
	s := p.Dimensions
	return &Destination{
		ID:                p.ID,
		Name:              p.Name,
		Country:           p.Country,
		Region:            p.Region,
		Tier:              p.Tier,
		Active:            p.Active,
		Description:       p.Description,
		BestSeason:        p.BestSeason,
		Restorative:       s.Restorative,
		Achievement:       s.Achievement,
		Cultural:          s.Cultural,
		SocialVibe:        s.SocialVibe,
		Visual:            s.Visual,
		Culinary:          s.Culinary,
		Nature:            s.Nature,
		CulturalSensory:   s.CulturalSensory,
		Wellness:          s.Wellness,
		LuxuryStyle:       s.LuxuryStyle,
		PrimaryDimensions: primary,
		ClimateTags:       pq.StringArray(p.ClimateTags),
		Highlights:        pq.StringArray(p.Highlights),
		AvgDailyCost:      p.AvgDailyCost,
		FlightHours:       p.FlightHours,
	}
}
