package services

import (
	"context"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/repositories"
	"soulprint/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, respondentID uuid.UUID, destinationID string, rating int, comment string) (*db_models.MatchFeedback, error)
	GetFeedback(ctx context.Context, filter request_models.FeedbackFilter, page, pageSize int) (*response_models.FeedbackPage, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	matchRepo    repositories.MatchRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, matchRepo repositories.MatchRepository, logger *zap.Logger) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		matchRepo:    matchRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// AddFeedback only accepts ratings of destinations the respondent was
// actually matched with.
func (s *FeedbackService) AddFeedback(ctx context.Context, respondentID uuid.UUID, destinationID string, rating int, comment string) (*db_models.MatchFeedback, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidInput
	}

	match, err := s.matchRepo.Get(ctx, respondentID, destinationID)
	if err != nil {
		s.logger.Error("get match", zap.String("respondent_id", respondentID.String()), zap.String("destination_id", destinationID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if match == nil {
		return nil, utils.ErrMatchNotFound
	}

	feedback := &db_models.MatchFeedback{
		RespondentID:  respondentID,
		DestinationID: destinationID,
		Rating:        rating,
		Comment:       comment,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		s.logger.Error("create feedback", zap.String("respondent_id", respondentID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return feedback, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, filter request_models.FeedbackFilter, page, pageSize int) (*response_models.FeedbackPage, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if err := s.validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	listing, err := s.feedbackRepo.ListFeedback(ctx, filter, page, pageSize)
	if err != nil {
		s.logger.Error("list feedback", zap.Any("filter", filter), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.FeedbackPage{
		Items:     make([]response_models.FeedbackItem, 0, len(listing.Rows)),
		Total:     listing.Total,
		AvgRating: math.Round(listing.AvgRating*100) / 100,
		Page:      page,
		PageSize:  pageSize,
	}
	for _, fb := range listing.Rows {
		out.Items = append(out.Items, response_models.FeedbackItem{
			ID:            fb.ID.String(),
			RespondentID:  fb.RespondentID.String(),
			DestinationID: fb.DestinationID,
			Rating:        fb.Rating,
			Comment:       fb.Comment,
			CreatedAt:     utils.FormatUnixRFC3339(fb.CreatedAt),
		})
	}
	return out, nil
}
