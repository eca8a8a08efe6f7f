package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/questionnaire"
	"soulprint/internal/repositories"
	"soulprint/internal/scoring"
	"soulprint/pkg/utils"
)

type QuestionnaireServiceInterface interface {
	StartSession(ctx context.Context, respondentID uuid.UUID) (*response_models.SessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error)
	RecordAnswers(ctx context.Context, sessionID uuid.UUID, answers scoring.RawResponse) (*response_models.SessionResponse, error)
	Next(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*response_models.TraitResponse, error)
}

type QuestionnaireService struct {
	sessions repositories.SessionRepository
	traits   TraitServiceInterface
	cfg      *scoring.Config
	logger   *zap.Logger
}

func NewQuestionnaireService(
	sessions repositories.SessionRepository,
	traits TraitServiceInterface,
	aggregator *scoring.Aggregator,
	logger *zap.Logger,
) QuestionnaireServiceInterface {
	return &QuestionnaireService{
		sessions: sessions,
		traits:   traits,
		cfg:      aggregator.Config(),
		logger:   logger,
	}
}

func (s *QuestionnaireService) StartSession(ctx context.Context, respondentID uuid.UUID) (*response_models.SessionResponse, error) {
	if respondentID == uuid.Nil {
		respondentID = uuid.New()
	}
	session, err := questionnaire.NewSession(respondentID.String(), s.cfg.Sections)
	if err != nil {
		s.logger.Error("start session", zap.Error(err))
		return nil, err
	}

	row := &db_models.QuestionnaireSession{
		RespondentID:  respondentID,
		Status:        string(session.Status()),
		Answers:       datatypes.JSON("{}"),
		ConfigVersion: s.cfg.Version,
	}
	if err := s.sessions.Create(ctx, row); err != nil {
		s.logger.Error("create session", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toSessionResponse(row, session), nil
}

// load restores the state machine from its row.
func (s *QuestionnaireService) load(ctx context.Context, sessionID uuid.UUID) (*db_models.QuestionnaireSession, *questionnaire.Session, error) {
	row, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("load session", zap.String("session_id", sessionID.String()), zap.Error(err))
		return nil, nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, nil, utils.ErrSessionNotFound
	}

	var answers scoring.RawResponse
	if len(row.Answers) > 0 {
		if err := answers.UnmarshalJSON(row.Answers); err != nil {
			s.logger.Error("decode session answers", zap.String("session_id", sessionID.String()), zap.Error(err))
			return nil, nil, utils.ErrDatabaseError
		}
	}

	session, err := questionnaire.Restore(row.RespondentID.String(), s.cfg.Sections, row.CurrentSection, questionnaire.Status(row.Status), answers)
	if err != nil {
		return nil, nil, err
	}
	return row, session, nil
}

func (s *QuestionnaireService) save(ctx context.Context, row *db_models.QuestionnaireSession, session *questionnaire.Session) error {
	answers, err := session.Answers().MarshalJSON()
	if err != nil {
		return utils.ErrInvalidInput
	}
	row.Answers = datatypes.JSON(answers)
	row.CurrentSection = session.CurrentIndex()
	row.Status = string(session.Status())

	if err := s.sessions.Update(ctx, row); err != nil {
		s.logger.Error("update session", zap.String("session_id", row.ID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *QuestionnaireService) GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error) {
	row, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(row, session), nil
}

func (s *QuestionnaireService) RecordAnswers(ctx context.Context, sessionID uuid.UUID, answers scoring.RawResponse) (*response_models.SessionResponse, error) {
	return s.transition(ctx, sessionID, func(session *questionnaire.Session) error {
		return session.Record(answers)
	})
}

func (s *QuestionnaireService) Next(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error) {
	return s.transition(ctx, sessionID, (*questionnaire.Session).Next)
}

func (s *QuestionnaireService) Back(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error) {
	return s.transition(ctx, sessionID, (*questionnaire.Session).Back)
}

func (s *QuestionnaireService) transition(ctx context.Context, sessionID uuid.UUID, step func(*questionnaire.Session) error) (*response_models.SessionResponse, error) {
	row, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := step(session); err != nil {
		return nil, err
	}
	if err := s.save(ctx, row, session); err != nil {
		return nil, err
	}
	return toSessionResponse(row, session), nil
}

// Submit freezes the session and scores the snapshot. A session that was
// frozen earlier but never scored can be submitted again.
func (s *QuestionnaireService) Submit(ctx context.Context, sessionID uuid.UUID) (*response_models.TraitResponse, error) {
	row, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var snapshot scoring.RawResponse
	if session.Status() == questionnaire.StatusSubmitted {
		if _, terr := s.traits.GetTraits(ctx, row.RespondentID); terr == nil {
			return nil, questionnaire.ErrSessionSubmitted
		} else if !errors.Is(terr, utils.ErrTraitsNotComputed) {
			return nil, terr
		}
		snapshot = session.Answers()
	} else {
		snapshot, err = session.Submit()
		if err != nil {
			return nil, err
		}
		now := utils.NowUnixSeconds()
		row.SubmittedAt = &now
		if err := s.save(ctx, row, session); err != nil {
			return nil, err
		}
	}

	out, err := s.traits.SubmitSnapshot(ctx, row.RespondentID, row.ID, snapshot)
	if err != nil {
		return nil, err
	}
	s.logger.Info("questionnaire submitted",
		zap.String("session_id", row.ID.String()),
		zap.String("respondent_id", row.RespondentID.String()),
	)
	return out, nil
}

func toSessionResponse(row *db_models.QuestionnaireSession, session *questionnaire.Session) *response_models.SessionResponse {
	out := &response_models.SessionResponse{
		ID:             row.ID.String(),
		RespondentID:   row.RespondentID.String(),
		Status:         session.Status(),
		CurrentSection: session.CurrentIndex(),
		SectionCount:   session.SectionCount(),
		Section:        session.CurrentSection(),
		Progress:       session.Progress(),
		Answers:        session.Answers(),
	}
	if row.SubmittedAt != nil {
		out.SubmittedAt = utils.FormatUnixRFC3339(*row.SubmittedAt)
	}
	return out
}
