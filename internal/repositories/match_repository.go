package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soulprint/internal/models/db_models"
)

type MatchRepository interface {
	// ReplaceForRespondent swaps the respondent's whole match set atomically.
	ReplaceForRespondent(ctx context.Context, respondentID uuid.UUID, matches []db_models.MatchResult) error
	ListByRespondent(ctx context.Context, respondentID uuid.UUID) ([]db_models.MatchResult, error)
	Get(ctx context.Context, respondentID uuid.UUID, destinationID string) (*db_models.MatchResult, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) ReplaceForRespondent(ctx context.Context, respondentID uuid.UUID, matches []db_models.MatchResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("respondent_id = ?", respondentID).Delete(&db_models.MatchResult{}).Error; err != nil {
			return err
		}
		if len(matches) == 0 {
			return nil
		}
		return tx.CreateInBatches(matches, 100).Error
	})
}

func (r *matchRepository) ListByRespondent(ctx context.Context, respondentID uuid.UUID) ([]db_models.MatchResult, error) {
	var out []db_models.MatchResult
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("respondent_id = ?", respondentID).
		Order("rank ASC").
		Find(&out).Error
	return out, err
}

func (r *matchRepository) Get(ctx context.Context, respondentID uuid.UUID, destinationID string) (*db_models.MatchResult, error) {
	var m db_models.MatchResult
	err := r.db.WithContext(ctx).
		Preload("Destination").
		First(&m, "respondent_id = ? AND destination_id = ?", respondentID, destinationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
