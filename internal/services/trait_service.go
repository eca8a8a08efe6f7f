package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/repositories"
	"soulprint/internal/scoring"
	"soulprint/pkg/utils"
)

type TraitServiceInterface interface {
	// SubmitSnapshot stores the submitted answers and scores them.
	SubmitSnapshot(ctx context.Context, respondentID, sessionID uuid.UUID, answers scoring.RawResponse) (*response_models.TraitResponse, error)
	GetTraits(ctx context.Context, respondentID uuid.UUID) (*response_models.TraitResponse, error)
	// Recompute rescores the stored snapshot. An unchanged fingerprint leaves
	// the stored vector alone.
	Recompute(ctx context.Context, respondentID uuid.UUID) (*response_models.TraitResponse, error)
	Vector(ctx context.Context, respondentID uuid.UUID) (scoring.TraitVector, error)
}

type TraitService struct {
	repo       repositories.TraitRepository
	aggregator *scoring.Aggregator
	logger     *zap.Logger
}

func NewTraitService(repo repositories.TraitRepository, aggregator *scoring.Aggregator, logger *zap.Logger) TraitServiceInterface {
	return &TraitService{repo: repo, aggregator: aggregator, logger: logger}
}

func (s *TraitService) fingerprint(answers scoring.RawResponse) ([]byte, string, error) {
	canonical, err := answers.MarshalJSON()
	if err != nil {
		return nil, "", err
	}
	return canonical, utils.Fingerprint(canonical, s.aggregator.Config().Version), nil
}

func (s *TraitService) SubmitSnapshot(ctx context.Context, respondentID, sessionID uuid.UUID, answers scoring.RawResponse) (*response_models.TraitResponse, error) {
	canonical, fp, err := s.fingerprint(answers)
	if err != nil {
		s.logger.Error("encode answers", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrInvalidInput
	}

	snapshot := &db_models.ResponseSnapshot{
		RespondentID:  respondentID,
		SessionID:     sessionID,
		Answers:       datatypes.JSON(canonical),
		Fingerprint:   fp,
		ConfigVersion: s.aggregator.Config().Version,
	}
	if err := s.repo.UpsertSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("store response snapshot", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.scoreAndStore(ctx, respondentID, answers, fp)
}

func (s *TraitService) Recompute(ctx context.Context, respondentID uuid.UUID) (*response_models.TraitResponse, error) {
	snapshot, err := s.repo.GetSnapshot(ctx, respondentID)
	if err != nil {
		s.logger.Error("load response snapshot", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if snapshot == nil {
		return nil, utils.ErrRespondentNotFound
	}

	var answers scoring.RawResponse
	if err := answers.UnmarshalJSON(snapshot.Answers); err != nil {
		s.logger.Error("decode response snapshot", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	_, fp, err := s.fingerprint(answers)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return s.scoreAndStore(ctx, respondentID, answers, fp)
}

func (s *TraitService) scoreAndStore(ctx context.Context, respondentID uuid.UUID, answers scoring.RawResponse, fp string) (*response_models.TraitResponse, error) {
	version := s.aggregator.Config().Version

	existing, err := s.repo.GetProfile(ctx, respondentID)
	if err != nil {
		s.logger.Error("load trait profile", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil && existing.Fingerprint == fp && existing.ConfigVersion == version {
		out := toTraitResponse(existing)
		out.Unchanged = true
		return out, nil
	}

	vector := s.aggregator.Compute(answers)
	profile := &db_models.TraitProfile{
		RespondentID:  respondentID,
		Scores:        datatypes.NewJSONType(vector.Scores),
		Labels:        datatypes.NewJSONType(vector.Labels),
		Fingerprint:   fp,
		ConfigVersion: version,
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		s.logger.Error("store trait profile", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("trait vector stored",
		zap.String("respondent_id", respondentID.String()),
		zap.String("config_version", version),
		zap.Int("traits", len(vector.Scores)),
	)
	return toTraitResponse(profile), nil
}

func (s *TraitService) GetTraits(ctx context.Context, respondentID uuid.UUID) (*response_models.TraitResponse, error) {
	profile, err := s.repo.GetProfile(ctx, respondentID)
	if err != nil {
		s.logger.Error("load trait profile", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrTraitsNotComputed
	}
	return toTraitResponse(profile), nil
}

// Vector returns ErrTraitsNotComputed when nothing is stored yet.
func (s *TraitService) Vector(ctx context.Context, respondentID uuid.UUID) (scoring.TraitVector, error) {
	out, err := s.GetTraits(ctx, respondentID)
	if err != nil {
		return scoring.TraitVector{}, err
	}
	return out.Traits, nil
}

func toTraitResponse(p *db_models.TraitProfile) *response_models.TraitResponse {
	out := &response_models.TraitResponse{
		RespondentID: p.RespondentID.String(),
		Traits: scoring.TraitVector{
			Scores: p.Scores.Data(),
			Labels: p.Labels.Data(),
		},
		Fingerprint:   p.Fingerprint,
		ConfigVersion: p.ConfigVersion,
	}
	if p.UpdatedAt > 0 {
		out.UpdatedAt = utils.FormatUnixRFC3339(p.UpdatedAt)
	}
	return out
}
