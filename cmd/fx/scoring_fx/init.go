package scoring_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"soulprint/internal/config"
	"soulprint/internal/scoring"
)

var Module = fx.Provide(provideAggregator)

func provideAggregator(cfg *config.Config, logger *zap.Logger) (*scoring.Aggregator, error) {
	table, err := scoring.LoadConfig(cfg.ScoringConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Info("scoring table loaded",
		zap.String("path", cfg.ScoringConfigPath),
		zap.String("version", table.Version),
	)
	return scoring.NewAggregator(table), nil
}
