package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soulprint/internal/models/request_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/narrative"
	"soulprint/internal/scoring"
	"soulprint/pkg/utils"
)

const narrativeTimeout = 60 * time.Second

type NarrativeServiceInterface interface {
	// Payload is the structured profile the narrative prompt is built from.
	Payload(ctx context.Context, respondentID uuid.UUID, req request_models.NarrativeRequest) (*narrative.Payload, error)
	Generate(ctx context.Context, respondentID uuid.UUID, req request_models.NarrativeRequest) (*response_models.NarrativeResponse, error)
}

type NarrativeService struct {
	traits  TraitServiceInterface
	matches MatchServiceInterface
	client  utils.NarrativeClientInterface
	cfg     *scoring.Config
	logger  *zap.Logger
}

// NewNarrativeService accepts a nil client; Generate then reports
// ErrNarrativeUnavailable while Payload keeps working.
func NewNarrativeService(
	traits TraitServiceInterface,
	matches MatchServiceInterface,
	client utils.NarrativeClientInterface,
	aggregator *scoring.Aggregator,
	logger *zap.Logger,
) NarrativeServiceInterface {
	return &NarrativeService{
		traits:  traits,
		matches: matches,
		client:  client,
		cfg:     aggregator.Config(),
		logger:  logger,
	}
}

func (s *NarrativeService) Payload(ctx context.Context, respondentID uuid.UUID, req request_models.NarrativeRequest) (*narrative.Payload, error) {
	vector, err := s.traits.Vector(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.ListMatches(ctx, respondentID)
	if err != nil {
		return nil, err
	}

	p := narrative.BuildPayload(respondentID.String(), s.cfg, vector, matches, narrative.TripContext{
		TravelDates: req.TravelDates,
		TripLength:  req.TripLength,
		Intentions:  req.Intentions,
		AvoidNotes:  req.AvoidNotes,
	}, req.MatchesLimit)
	return &p, nil
}

func (s *NarrativeService) Generate(ctx context.Context, respondentID uuid.UUID, req request_models.NarrativeRequest) (*response_models.NarrativeResponse, error) {
	if s.client == nil {
		return nil, utils.ErrNarrativeUnavailable
	}

	payload, err := s.Payload(ctx, respondentID, req)
	if err != nil {
		return nil, err
	}
	prompt, err := narrative.BuildPrompt(*payload)
	if err != nil {
		s.logger.Error("build narrative prompt", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrInvalidInput
	}

	callCtx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.client.GenerateNarrative(callCtx, prompt)
	if err != nil {
		s.logger.Error("narrative request failed",
			zap.String("respondent_id", respondentID.String()),
			zap.String("model", s.client.Model()),
			zap.Error(err),
		)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	n, err := narrative.Parse(raw)
	if err != nil {
		s.logger.Warn("unusable narrative answer",
			zap.String("respondent_id", respondentID.String()),
			zap.String("model", s.client.Model()),
			zap.Error(err),
		)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	s.logger.Info("narrative generated",
		zap.String("respondent_id", respondentID.String()),
		zap.String("model", s.client.Model()),
		zap.Duration("took", time.Since(start)),
	)

	out := &response_models.NarrativeResponse{
		RespondentID: respondentID.String(),
		Model:        s.client.Model(),
		Headline:     n.Headline,
		Sections:     make([]response_models.NarrativeSection, 0, len(n.Sections)),
	}
	for _, sec := range n.Sections {
		out.Sections = append(out.Sections, response_models.NarrativeSection{Title: sec.Title, Body: sec.Body})
	}
	return out, nil
}
