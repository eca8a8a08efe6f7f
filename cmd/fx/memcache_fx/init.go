package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"soulprint/internal/config"
	"soulprint/internal/infra"
	mem "soulprint/pkg/memcache"
)

var Module = fx.Provide(provideCatalogCache)

// provideCatalogCache prefers Redis so every replica sees the same
// invalidations, and falls back to process memory.
func provideCatalogCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) mem.CatalogCache {
	client := infra.InitRedis(context.Background(), cfg, logger)
	if client == nil {
		return mem.NewMemoryCatalogCache()
	}
	lc.Append(fx.StopHook(client.Close))
	logger.Info("catalog cache backed by redis", zap.String("addr", cfg.RedisAddr))
	return mem.NewRedisCatalogCache(client, logger)
}
