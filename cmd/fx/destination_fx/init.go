package destination_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soulprint/internal/config"
	"soulprint/internal/repositories"
	"soulprint/internal/services"
	mem "soulprint/pkg/memcache"
)

var Module = fx.Provide(provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(
	repo repositories.DestinationRepository,
	cache mem.CatalogCache,
	cfg *config.Config,
	logger *zap.Logger,
) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, cache, cfg.CatalogCacheTTL, logger)
}
