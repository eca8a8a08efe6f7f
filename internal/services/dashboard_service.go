package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"soulprint/internal/matching"
	resp "soulprint/internal/models/response_models"
	"soulprint/internal/repositories"
	"soulprint/pkg/utils"
)

const topDestinationsLimit = 10

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo   repositories.DashboardRepository
	logger *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func toPoints(rows []repositories.BucketSum) []resp.SeriesPoint {
	points := make([]resp.SeriesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}
	return points
}

// fitBands counts top-ranked fit scores per explanation band, every band
// present even when empty.
func fitBands(scores []float64) []resp.BandCount {
	order := []matching.Band{
		matching.BandExceptional,
		matching.BandStrong,
		matching.BandModerate,
		matching.BandLimited,
		matching.BandWeak,
	}
	counts := make(map[matching.Band]int64, len(order))
	for _, s := range scores {
		counts[matching.BandOf(s)]++
	}
	out := make([]resp.BandCount, 0, len(order))
	for _, b := range order {
		out = append(out, resp.BandCount{Band: string(b), Count: counts[b]})
	}
	return out
}

func (s *dashboardService) fail(what string, err error) error {
	s.logger.Error("dashboard: "+what, zap.Error(err))
	return utils.ErrDatabaseError
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	// ---------- Core counts ----------
	started, err := s.repo.CountSessions(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, s.fail("count sessions", err)
	}
	submitted, err := s.repo.CountSubmitted(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, s.fail("count submitted", err)
	}
	scored, err := s.repo.CountTraitProfiles(ctx)
	if err != nil {
		return nil, s.fail("count trait profiles", err)
	}
	active, err := s.repo.CountActiveDestinations(ctx)
	if err != nil {
		return nil, s.fail("count destinations", err)
	}
	matches, err := s.repo.CountMatches(ctx)
	if err != nil {
		return nil, s.fail("count matches", err)
	}
	avgTop, err := s.repo.AvgTopFit(ctx)
	if err != nil {
		return nil, s.fail("average top fit", err)
	}
	fb, err := s.repo.FeedbackStats(ctx)
	if err != nil {
		return nil, s.fail("feedback stats", err)
	}

	var completion float64
	if started > 0 {
		completion = float64(submitted) * 100.0 / float64(started)
	}

	// ---------- Series ----------
	sessionRows, err := s.repo.NewSessionsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, s.fail("sessions series", err)
	}
	submitRows, err := s.repo.SubmissionsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, s.fail("submissions series", err)
	}

	// ---------- Destinations ----------
	topRows, err := s.repo.TopDestinations(ctx, topDestinationsLimit)
	if err != nil {
		return nil, s.fail("top destinations", err)
	}
	top := make([]resp.TopDestination, 0, len(topRows))
	for _, r := range topRows {
		top = append(top, resp.TopDestination{
			DestinationID: r.DestinationID,
			Name:          r.Name,
			TopRankCount:  r.TopRankCount,
			AvgFit:        r.AvgFit,
		})
	}

	scores, err := s.repo.FitScores(ctx)
	if err != nil {
		return nil, s.fail("fit scores", err)
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			SessionsStarted:    started,
			SessionsSubmitted:  submitted,
			CompletionPct:      completion,
			RespondentsScored:  scored,
			ActiveDestinations: active,
			StoredMatches:      matches,
			AvgTopFit:          avgTop,
			FeedbackCount:      fb.Count,
			AvgRating:          fb.AvgRating,
		},
		NewSessions:     resp.CountSeries{Points: toPoints(sessionRows)},
		Submissions:     resp.CountSeries{Points: toPoints(submitRows)},
		TopDestinations: top,
		FitBands:        fitBands(scores),
	}, nil
}
