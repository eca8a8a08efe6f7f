package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soulprint/internal/models/db_models"
)

type SessionRepository interface {
	Create(ctx context.Context, s *db_models.QuestionnaireSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.QuestionnaireSession, error)
	Update(ctx context.Context, s *db_models.QuestionnaireSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *db_models.QuestionnaireSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetByID returns (nil, nil) when no session has the id.
func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.QuestionnaireSession, error) {
	var s db_models.QuestionnaireSession
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Update(ctx context.Context, s *db_models.QuestionnaireSession) error {
	res := r.db.WithContext(ctx).
		Model(s).
		Select("current_section", "status", "answers", "submitted_at", "updated_at").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
