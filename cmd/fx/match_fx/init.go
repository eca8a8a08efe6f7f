package match_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soulprint/internal/repositories"
	"soulprint/internal/services"
)

var Module = fx.Provide(provideMatchRepo, provideMatchService)

func provideMatchRepo(db *gorm.DB) repositories.MatchRepository {
	return repositories.NewMatchRepository(db)
}

func provideMatchService(
	repo repositories.MatchRepository,
	traits services.TraitServiceInterface,
	destinations services.DestinationServiceInterface,
	logger *zap.Logger,
) services.MatchServiceInterface {
	return services.NewMatchService(repo, traits, destinations, logger)
}
