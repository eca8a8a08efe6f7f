package questionnaire_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soulprint/internal/repositories"
	"soulprint/internal/scoring"
	"soulprint/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideTraitRepo, provideTraitService, provideQuestionnaireService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideTraitRepo(db *gorm.DB) repositories.TraitRepository {
	return repositories.NewTraitRepository(db)
}

func provideTraitService(repo repositories.TraitRepository, aggregator *scoring.Aggregator, logger *zap.Logger) services.TraitServiceInterface {
	return services.NewTraitService(repo, aggregator, logger)
}

func provideQuestionnaireService(
	sessions repositories.SessionRepository,
	traits services.TraitServiceInterface,
	aggregator *scoring.Aggregator,
	logger *zap.Logger,
) services.QuestionnaireServiceInterface {
	return services.NewQuestionnaireService(sessions, traits, aggregator, logger)
}
