package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
	"soulprint/internal/repositories"
)

var errBoom = errors.New("boom")

type fakeSessionRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]db_models.QuestionnaireSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: map[uuid.UUID]db_models.QuestionnaireSession{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *db_models.QuestionnaireSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.QuestionnaireSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *db_models.QuestionnaireSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.rows[s.ID] = *s
	return nil
}

type fakeTraitRepo struct {
	snapshots     map[uuid.UUID]db_models.ResponseSnapshot
	profiles      map[uuid.UUID]db_models.TraitProfile
	profileWrites int
}

func newFakeTraitRepo() *fakeTraitRepo {
	return &fakeTraitRepo{
		snapshots: map[uuid.UUID]db_models.ResponseSnapshot{},
		profiles:  map[uuid.UUID]db_models.TraitProfile{},
	}
}

func (f *fakeTraitRepo) UpsertSnapshot(_ context.Context, s *db_models.ResponseSnapshot) error {
	f.snapshots[s.RespondentID] = *s
	return nil
}

func (f *fakeTraitRepo) GetSnapshot(_ context.Context, id uuid.UUID) (*db_models.ResponseSnapshot, error) {
	s, ok := f.snapshots[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeTraitRepo) UpsertProfile(_ context.Context, p *db_models.TraitProfile) error {
	f.profileWrites++
	f.profiles[p.RespondentID] = *p
	return nil
}

func (f *fakeTraitRepo) GetProfile(_ context.Context, id uuid.UUID) (*db_models.TraitProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeDestinationRepo struct {
	rows        map[string]db_models.Destination
	listCalls   int
	failListAll bool
	// afterListAll runs once the rows are read, before ListAll returns.
	afterListAll func()
}

func newFakeDestinationRepo(rows ...db_models.Destination) *fakeDestinationRepo {
	f := &fakeDestinationRepo{rows: map[string]db_models.Destination{}}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeDestinationRepo) Create(_ context.Context, d *db_models.Destination) error {
	f.rows[d.ID] = *d
	return nil
}

func (f *fakeDestinationRepo) Update(_ context.Context, d *db_models.Destination) error {
	if _, ok := f.rows[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.rows[d.ID] = *d
	return nil
}

func (f *fakeDestinationRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id string) (*db_models.Destination, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDestinationRepo) GetByIDs(_ context.Context, ids []string) ([]db_models.Destination, error) {
	var out []db_models.Destination
	for _, id := range ids {
		if d, ok := f.rows[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDestinationRepo) sorted(filter request_models.DestinationFilter) []db_models.Destination {
	var out []db_models.Destination
	for _, d := range f.rows {
		if filter.ActiveOnly && !d.Active {
			continue
		}
		if filter.Region != "" && d.Region != filter.Region {
			continue
		}
		if filter.Tier != "" && d.Tier != filter.Tier {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeDestinationRepo) List(_ context.Context, filter request_models.DestinationFilter, page, pageSize int) ([]db_models.Destination, error) {
	all := f.sorted(filter)
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (f *fakeDestinationRepo) ListAll(_ context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error) {
	f.listCalls++
	if f.failListAll {
		return nil, errBoom
	}
	rows := f.sorted(filter)
	if hook := f.afterListAll; hook != nil {
		f.afterListAll = nil
		hook()
	}
	return rows, nil
}

func (f *fakeDestinationRepo) Similar(_ context.Context, d *db_models.Destination, limit int) ([]repositories.SimilarRow, error) {
	var out []repositories.SimilarRow
	for _, row := range f.sorted(request_models.DestinationFilter{ActiveOnly: true}) {
		if row.ID == d.ID || len(out) == limit {
			continue
		}
		out = append(out, repositories.SimilarRow{Destination: row, Distance: 1})
	}
	return out, nil
}

type fakeMatchRepo struct {
	dests    *fakeDestinationRepo
	rows     map[uuid.UUID][]db_models.MatchResult
	replaced int
}

func newFakeMatchRepo(dests *fakeDestinationRepo) *fakeMatchRepo {
	return &fakeMatchRepo{dests: dests, rows: map[uuid.UUID][]db_models.MatchResult{}}
}

func (f *fakeMatchRepo) ReplaceForRespondent(_ context.Context, id uuid.UUID, matches []db_models.MatchResult) error {
	f.replaced++
	f.rows[id] = append([]db_models.MatchResult{}, matches...)
	return nil
}

func (f *fakeMatchRepo) withDestination(m db_models.MatchResult) db_models.MatchResult {
	if d, ok := f.dests.rows[m.DestinationID]; ok {
		m.Destination = &d
	}
	return m
}

func (f *fakeMatchRepo) ListByRespondent(_ context.Context, id uuid.UUID) ([]db_models.MatchResult, error) {
	var out []db_models.MatchResult
	for _, m := range f.rows[id] {
		out = append(out, f.withDestination(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (f *fakeMatchRepo) Get(_ context.Context, id uuid.UUID, destinationID string) (*db_models.MatchResult, error) {
	for _, m := range f.rows[id] {
		if m.DestinationID == destinationID {
			m = f.withDestination(m)
			return &m, nil
		}
	}
	return nil, nil
}

type fakeFeedbackRepo struct {
	rows []db_models.MatchFeedback
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, fb *db_models.MatchFeedback) error {
	f.rows = append(f.rows, *fb)
	return nil
}

func (f *fakeFeedbackRepo) ListFeedback(_ context.Context, filter request_models.FeedbackFilter, page, pageSize int) (repositories.FeedbackListing, error) {
	var out repositories.FeedbackListing
	var sum int
	var matched []db_models.MatchFeedback
	for _, fb := range f.rows {
		if filter.RespondentID != "" && fb.RespondentID.String() != filter.RespondentID {
			continue
		}
		if filter.DestinationID != "" && fb.DestinationID != filter.DestinationID {
			continue
		}
		if filter.MaxRating > 0 && fb.Rating > filter.MaxRating {
			continue
		}
		matched = append(matched, fb)
		sum += fb.Rating
	}
	out.Total = int64(len(matched))
	if out.Total > 0 {
		out.AvgRating = float64(sum) / float64(out.Total)
	}
	start := (page - 1) * pageSize
	if start < len(matched) {
		end := min(start+pageSize, len(matched))
		out.Rows = matched[start:end]
	}
	return out, nil
}

type fakeNarrativeClient struct {
	answer string
	err    error
	prompt string
}

func (f *fakeNarrativeClient) GenerateNarrative(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func (f *fakeNarrativeClient) Model() string { return "fake-model" }
func (f *fakeNarrativeClient) Close() error  { return nil }

type fakeDashboardRepo struct {
	started, submitted int64
	scores             []float64
	err                error
}

func (f *fakeDashboardRepo) CountSessions(context.Context, time.Time, time.Time) (int64, error) {
	return f.started, f.err
}
func (f *fakeDashboardRepo) CountSubmitted(context.Context, time.Time, time.Time) (int64, error) {
	return f.submitted, nil
}
func (f *fakeDashboardRepo) CountTraitProfiles(context.Context) (int64, error)      { return 3, nil }
func (f *fakeDashboardRepo) CountActiveDestinations(context.Context) (int64, error) { return 12, nil }
func (f *fakeDashboardRepo) CountMatches(context.Context) (int64, error)            { return 36, nil }
func (f *fakeDashboardRepo) AvgTopFit(context.Context) (float64, error)            { return 77.5, nil }
func (f *fakeDashboardRepo) FeedbackStats(context.Context) (repositories.FeedbackStats, error) {
	return repositories.FeedbackStats{Count: 2, AvgRating: 4.5}, nil
}
func (f *fakeDashboardRepo) NewSessionsSeries(context.Context, time.Time, time.Time, string, string) ([]repositories.BucketSum, error) {
	return []repositories.BucketSum{{Bucket: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Sum: 4}}, nil
}
func (f *fakeDashboardRepo) SubmissionsSeries(context.Context, time.Time, time.Time, string, string) ([]repositories.BucketSum, error) {
	return nil, nil
}
func (f *fakeDashboardRepo) TopDestinations(context.Context, int) ([]repositories.TopDestinationRow, error) {
	return []repositories.TopDestinationRow{{DestinationID: "kyoto", Name: "Kyoto", TopRankCount: 2, AvgFit: 81}}, nil
}
func (f *fakeDashboardRepo) FitScores(context.Context) ([]float64, error) {
	return f.scores, nil
}
