package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soulprint/internal/matching"
	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
	"soulprint/internal/models/response_models"
	"soulprint/internal/repositories"
	mem "soulprint/pkg/memcache"
	"soulprint/pkg/utils"
)

const defaultSimilarLimit = 5

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, filter request_models.DestinationFilter, page, pageSize int) ([]matching.DestinationProfile, error)
	GetDestination(ctx context.Context, id string) (*matching.DestinationProfile, error)
	// Catalog returns every destination passing filter, served from the
	// catalog cache while the entry is fresh.
	Catalog(ctx context.Context, filter request_models.DestinationFilter) ([]matching.DestinationProfile, error)
	SimilarDestinations(ctx context.Context, id string, limit int) ([]response_models.SimilarDestination, error)

	CreateDestination(ctx context.Context, p matching.DestinationProfile) (*matching.DestinationProfile, error)
	UpdateDestination(ctx context.Context, id string, p matching.DestinationProfile) (*matching.DestinationProfile, error)
	DeleteDestination(ctx context.Context, id string) error
}

type DestinationService struct {
	repo     repositories.DestinationRepository
	cache    mem.CatalogCache
	cacheTTL time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

func NewDestinationService(
	repo repositories.DestinationRepository,
	cache mem.CatalogCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DestinationServiceInterface {
	return &DestinationService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		validate: validator.New(),
		logger:   logger,
	}
}

func toProfiles(rows []db_models.Destination) []matching.DestinationProfile {
	out := make([]matching.DestinationProfile, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToProfile())
	}
	return out
}

func (s *DestinationService) ListDestinations(ctx context.Context, filter request_models.DestinationFilter, page, pageSize int) ([]matching.DestinationProfile, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	rows, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		s.logger.Error("list destinations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toProfiles(rows), nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id string) (*matching.DestinationProfile, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get destination", zap.String("destination_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrDestinationNotFound
	}
	p := row.ToProfile()
	return &p, nil
}

func (s *DestinationService) Catalog(ctx context.Context, filter request_models.DestinationFilter) ([]matching.DestinationProfile, error) {
	key := filter.CacheKey()
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached []matching.DestinationProfile
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.logger.Warn("discarding unreadable catalog cache entry", zap.String("key", key))
	}

	gen, cacheable := s.cache.Generation(ctx)
	rows, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		s.logger.Error("load catalog", zap.String("key", key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	profiles := toProfiles(rows)

	if !cacheable {
		return profiles, nil
	}
	if raw, err := json.Marshal(profiles); err == nil {
		s.cache.Set(ctx, gen, key, raw, s.cacheTTL)
	}
	return profiles, nil
}

func (s *DestinationService) SimilarDestinations(ctx context.Context, id string, limit int) ([]response_models.SimilarDestination, error) {
	if limit <= 0 || limit > 50 {
		limit = defaultSimilarLimit
	}
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get destination", zap.String("destination_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrDestinationNotFound
	}

	rows, err := s.repo.Similar(ctx, row, limit)
	if err != nil {
		s.logger.Error("similar destinations", zap.String("destination_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.SimilarDestination, 0, len(rows))
	for i := range rows {
		out = append(out, response_models.SimilarDestination{
			Destination: rows[i].Destination.ToProfile(),
			Distance:    rows[i].Distance,
		})
	}
	return out, nil
}

func (s *DestinationService) check(p matching.DestinationProfile) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", utils.ErrInvalidInput, err.Error())
	}
	for _, d := range p.PrimaryDimensions {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown primary dimension %q", utils.ErrInvalidInput, d)
		}
	}
	return nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, p matching.DestinationProfile) (*matching.DestinationProfile, error) {
	if err := s.check(p); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		s.logger.Error("get destination", zap.String("destination_id", p.ID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDestinationExists
	}

	row := db_models.DestinationFromProfile(p)
	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDestinationExists
		}
		s.logger.Error("create destination", zap.String("destination_id", p.ID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("destination created", zap.String("destination_id", p.ID))
	out := row.ToProfile()
	return &out, nil
}

// UpdateDestination replaces every field; the id in the path wins over the
// body.
func (s *DestinationService) UpdateDestination(ctx context.Context, id string, p matching.DestinationProfile) (*matching.DestinationProfile, error) {
	p.ID = id
	if err := s.check(p); err != nil {
		return nil, err
	}

	row := db_models.DestinationFromProfile(p)
	if err := s.repo.Update(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDestinationNotFound
		}
		s.logger.Error("update destination", zap.String("destination_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate(ctx)

	out := row.ToProfile()
	return &out, nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete destination", zap.String("destination_id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrDestinationNotFound
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("destination deleted", zap.String("destination_id", id))
	return nil
}
