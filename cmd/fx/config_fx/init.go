package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"soulprint/internal/config"
	"soulprint/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideLogger, provideTokenSigner)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideTokenSigner(cfg *config.Config, logger *zap.Logger) *utils.TokenSigner {
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, admin routes will reject every request")
	}
	return utils.NewTokenSigner(cfg.JWTSecret, cfg.JWTTTL)
}
