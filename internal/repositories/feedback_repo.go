package repositories

import (
	"context"

	"gorm.io/gorm"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.MatchFeedback) error
	// ListFeedback returns one page, newest first, with the count and mean
	// rating of every row the filter selects.
	ListFeedback(ctx context.Context, filter request_models.FeedbackFilter, page, pageSize int) (FeedbackListing, error)
}

type FeedbackListing struct {
	Rows      []db_models.MatchFeedback
	Total     int64
	AvgRating float64
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.MatchFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) filtered(ctx context.Context, filter request_models.FeedbackFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&db_models.MatchFeedback{})
	if filter.RespondentID != "" {
		q = q.Where("respondent_id = ?", filter.RespondentID)
	}
	if filter.DestinationID != "" {
		q = q.Where("destination_id = ?", filter.DestinationID)
	}
	if filter.MaxRating > 0 {
		q = q.Where("rating <= ?", filter.MaxRating)
	}
	return q
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, filter request_models.FeedbackFilter, page, pageSize int) (FeedbackListing, error) {
	var out FeedbackListing

	var stats FeedbackStats
	err := r.filtered(ctx, filter).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&stats).Error
	if err != nil {
		return out, err
	}
	out.Total, out.AvgRating = stats.Count, stats.AvgRating
	if out.Total == 0 {
		return out, nil
	}

	err = r.filtered(ctx, filter).
		Order("created_at DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out.Rows).Error
	return out, err
}
