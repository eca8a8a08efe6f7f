package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soulprint/internal/models/db_models"
)

// TraitRepository stores the answer snapshot and the trait vector, one row of
// each per respondent. Writes are upserts: the last write wins.
type TraitRepository interface {
	UpsertSnapshot(ctx context.Context, s *db_models.ResponseSnapshot) error
	GetSnapshot(ctx context.Context, respondentID uuid.UUID) (*db_models.ResponseSnapshot, error)
	UpsertProfile(ctx context.Context, p *db_models.TraitProfile) error
	GetProfile(ctx context.Context, respondentID uuid.UUID) (*db_models.TraitProfile, error)
}

type traitRepository struct {
	db *gorm.DB
}

func NewTraitRepository(db *gorm.DB) TraitRepository {
	return &traitRepository{db: db}
}

func (r *traitRepository) UpsertSnapshot(ctx context.Context, s *db_models.ResponseSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "respondent_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "answers", "fingerprint", "config_version", "updated_at"}),
	}).Create(s).Error
}

func (r *traitRepository) GetSnapshot(ctx context.Context, respondentID uuid.UUID) (*db_models.ResponseSnapshot, error) {
	var s db_models.ResponseSnapshot
	err := r.db.WithContext(ctx).First(&s, "respondent_id = ?", respondentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *traitRepository) UpsertProfile(ctx context.Context, p *db_models.TraitProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "respondent_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"scores", "labels", "fingerprint", "config_version", "updated_at"}),
	}).Create(p).Error
}

func (r *traitRepository) GetProfile(ctx context.Context, respondentID uuid.UUID) (*db_models.TraitProfile, error) {
	var p db_models.TraitProfile
	err := r.db.WithContext(ctx).First(&p, "respondent_id = ?", respondentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
