package narrative_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"soulprint/internal/config"
	"soulprint/internal/scoring"
	"soulprint/internal/services"
	"soulprint/pkg/utils"
)

var Module = fx.Provide(provideNarrativeClient, provideNarrativeService)

// provideNarrativeClient yields a nil client when no provider is configured.
func provideNarrativeClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.NarrativeClientInterface, error) {
	client, err := utils.NewNarrativeClient(context.Background(), cfg.NarrativeProvider, cfg.NarrativeAPIKey(), cfg.NarrativeModel)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("narrative generation disabled")
		return nil, nil
	}
	lc.Append(fx.StopHook(client.Close))
	logger.Info("narrative client ready",
		zap.String("provider", cfg.NarrativeProvider),
		zap.String("model", client.Model()),
	)
	return client, nil
}

func provideNarrativeService(
	traits services.TraitServiceInterface,
	matches services.MatchServiceInterface,
	client utils.NarrativeClientInterface,
	aggregator *scoring.Aggregator,
	logger *zap.Logger,
) services.NarrativeServiceInterface {
	return services.NewNarrativeService(traits, matches, client, aggregator, logger)
}
