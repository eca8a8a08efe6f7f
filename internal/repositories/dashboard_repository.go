package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "soulprint/internal/models/db_models"
	"soulprint/internal/questionnaire"
)

type DashboardRepository interface {
	CountSessions(ctx context.Context, start, end time.Time) (int64, error)
	CountSubmitted(ctx context.Context, start, end time.Time) (int64, error)
	CountTraitProfiles(ctx context.Context) (int64, error)
	CountActiveDestinations(ctx context.Context) (int64, error)
	CountMatches(ctx context.Context) (int64, error)
	AvgTopFit(ctx context.Context) (float64, error)
	FeedbackStats(ctx context.Context) (FeedbackStats, error)

	NewSessionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
	SubmissionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)

	TopDestinations(ctx context.Context, limit int) ([]TopDestinationRow, error)
	FitScores(ctx context.Context) ([]float64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type FeedbackStats struct {
	Count     int64   `gorm:"column:count"`
	AvgRating float64 `gorm:"column:avg_rating"`
}

type TopDestinationRow struct {
	DestinationID string  `gorm:"column:destination_id"`
	Name          string  `gorm:"column:name"`
	TopRankCount  int64   `gorm:"column:top_rank_count"`
	AvgFit        float64 `gorm:"column:avg_fit"`
}

// dateTrunc buckets a column holding UNIX seconds, optionally in a timezone.
func dateTrunc(tz string, unixColumn string) string {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

func truncArgs(interval, tz string) []interface{} {
	if tz == "" {
		return []interface{}{interval}
	}
	return []interface{}{interval, tz}
}

// ---------- Counts ----------
func (r *dashboardRepository) CountSessions(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.QuestionnaireSession{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSubmitted(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.QuestionnaireSession{}).
		Where("status = ?", string(questionnaire.StatusSubmitted)).
		Where("submitted_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTraitProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.TraitProfile{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActiveDestinations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Destination{}).Where("active = ?", true).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountMatches(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.MatchResult{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) AvgTopFit(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&dbm.MatchResult{}).
		Select("AVG(fit_score)").
		Where("rank = 1").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *dashboardRepository) FeedbackStats(ctx context.Context) (FeedbackStats, error) {
	var row FeedbackStats
	err := r.db.WithContext(ctx).
		Model(&dbm.MatchFeedback{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&row).Error
	return row, err
}

// ---------- Series ----------
func (r *dashboardRepository) NewSessionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).
		Table("questionnaire_sessions").
		Select(dateTrunc(tz, "created_at")+" AS bucket, COUNT(*) AS sum", truncArgs(interval, tz)...).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) SubmissionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).
		Table("questionnaire_sessions").
		Select(dateTrunc(tz, "submitted_at")+" AS bucket, COUNT(*) AS sum", truncArgs(interval, tz)...).
		Where("submitted_at IS NOT NULL").
		Where("submitted_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

// ---------- Destinations ----------
func (r *dashboardRepository) TopDestinations(ctx context.Context, limit int) ([]TopDestinationRow, error) {
	var rows []TopDestinationRow
	err := r.db.WithContext(ctx).
		Table("match_results m").
		Select(`
			m.destination_id,
			d.name,
			COUNT(*) FILTER (WHERE m.rank = 1) AS top_rank_count,
			AVG(m.fit_score) AS avg_fit`).
		Joins("JOIN destinations d ON d.id = m.destination_id").
		Group("m.destination_id, d.name").
		Order("top_rank_count DESC, avg_fit DESC, m.destination_id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) FitScores(ctx context.Context) ([]float64, error) {
	var scores []float64
	err := r.db.WithContext(ctx).
		Model(&dbm.MatchResult{}).
		Where("rank = 1").
		Pluck("fit_score", &scores).Error
	return scores, err
}
