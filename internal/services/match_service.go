package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soulprint/internal/matching"
	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/repositories"
	"soulprint/pkg/utils"
)

type MatchServiceInterface interface {
	// GenerateMatches scores the active catalog against the stored trait
	// vector and replaces the respondent's previous match set.
	GenerateMatches(ctx context.Context, respondentID uuid.UUID, req request_models.GenerateMatchesRequest) ([]matching.MatchResult, error)
	ListMatches(ctx context.Context, respondentID uuid.UUID) ([]matching.MatchResult, error)
	CompareMatches(ctx context.Context, respondentID uuid.UUID, destinationIDs []string) (*matching.Comparison, error)
	// Recompute rescores the stored snapshot and regenerates matches over
	// the whole active catalog.
	Recompute(ctx context.Context, respondentID uuid.UUID) (*response_models.RecomputeResponse, error)
}

type MatchService struct {
	repo         repositories.MatchRepository
	traits       TraitServiceInterface
	destinations DestinationServiceInterface
	logger       *zap.Logger
}

func NewMatchService(
	repo repositories.MatchRepository,
	traits TraitServiceInterface,
	destinations DestinationServiceInterface,
	logger *zap.Logger,
) MatchServiceInterface {
	return &MatchService{
		repo:         repo,
		traits:       traits,
		destinations: destinations,
		logger:       logger,
	}
}

func (s *MatchService) GenerateMatches(ctx context.Context, respondentID uuid.UUID, req request_models.GenerateMatchesRequest) ([]matching.MatchResult, error) {
	vector, err := s.traits.Vector(ctx, respondentID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.destinations.Catalog(ctx, request_models.DestinationFilter{
		Region:     req.Region,
		Tier:       req.Tier,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	results := matching.MatchDestinations(vector, catalog)

	rows := make([]db_models.MatchResult, 0, len(results))
	for _, r := range results {
		rows = append(rows, db_models.MatchFromResult(respondentID, r))
	}
	if err := s.repo.ReplaceForRespondent(ctx, respondentID, rows); err != nil {
		s.logger.Error("store matches", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("matches generated",
		zap.String("respondent_id", respondentID.String()),
		zap.Int("catalog", len(catalog)),
		zap.Int("matches", len(results)),
	)
	return results, nil
}

func (s *MatchService) ListMatches(ctx context.Context, respondentID uuid.UUID) ([]matching.MatchResult, error) {
	rows, err := s.repo.ListByRespondent(ctx, respondentID)
	if err != nil {
		s.logger.Error("list matches", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]matching.MatchResult, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToResult())
	}
	return out, nil
}

// CompareMatches only compares destinations the respondent was matched with,
// in the order given. Repeated ids are compared once.
func (s *MatchService) CompareMatches(ctx context.Context, respondentID uuid.UUID, destinationIDs []string) (*matching.Comparison, error) {
	seen := make(map[string]struct{}, len(destinationIDs))
	entries := make([]matching.Entry, 0, len(destinationIDs))

	for _, id := range destinationIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		row, err := s.repo.Get(ctx, respondentID, id)
		if err != nil {
			s.logger.Error("get match", zap.String("respondent_id", respondentID.String()), zap.String("destination_id", id), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if row == nil || row.Destination == nil {
			return nil, fmt.Errorf("%w: %s", utils.ErrMatchNotFound, id)
		}
		entries = append(entries, matching.Entry{
			Profile: row.Destination.ToProfile(),
			Match:   row.ToResult(),
		})
	}

	cmp, err := matching.Compare(entries)
	if err != nil {
		return nil, err
	}
	return &cmp, nil
}

func (s *MatchService) Recompute(ctx context.Context, respondentID uuid.UUID) (*response_models.RecomputeResponse, error) {
	traits, err := s.traits.Recompute(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	matches, err := s.GenerateMatches(ctx, respondentID, request_models.GenerateMatchesRequest{})
	if err != nil {
		return nil, err
	}
	return &response_models.RecomputeResponse{Traits: *traits, Matches: len(matches)}, nil
}
