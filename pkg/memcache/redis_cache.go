package mem

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisCatalogKey = "soulprint:catalog"

// redisHashClient is the subset of *redis.Client the cache needs.
type redisHashClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCatalogCache keeps every filter's result as a field of one hash per
// generation. Invalidate bumps the generation counter, so a write started
// before it lands in a hash nobody reads and expires with its TTL. The TTL
// is set when a hash is created and not extended by later writes. Redis
// failures degrade to cache misses.
type RedisCatalogCache struct {
	client redisHashClient
	key    string
	logger *zap.Logger
}

func NewRedisCatalogCache(client *redis.Client, logger *zap.Logger) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, key: redisCatalogKey, logger: logger}
}

func (r *RedisCatalogCache) genKey() string {
	return r.key + ":gen"
}

func (r *RedisCatalogCache) hashKey(gen uint64) string {
	return r.key + ":" + strconv.FormatUint(gen, 10)
}

func (r *RedisCatalogCache) Generation(ctx context.Context) (uint64, bool) {
	gen, err := r.client.Get(ctx, r.genKey()).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		r.logger.Warn("catalog cache generation read failed", zap.Error(err))
		return 0, false
	}
	return gen, true
}

func (r *RedisCatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	gen, ok := r.Generation(ctx)
	if !ok {
		return nil, false
	}
	b, err := r.client.HGet(ctx, r.hashKey(gen), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

func (r *RedisCatalogCache) Set(ctx context.Context, gen uint64, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	hash := r.hashKey(gen)
	if err := r.client.HSet(ctx, hash, key, value).Err(); err != nil {
		r.logger.Warn("catalog cache write failed", zap.Error(err))
		return
	}
	if err := r.client.ExpireNX(ctx, hash, ttl).Err(); err != nil {
		r.logger.Warn("catalog cache expire failed", zap.Error(err))
	}
}

func (r *RedisCatalogCache) Invalidate(ctx context.Context) {
	prev, ok := r.Generation(ctx)
	if err := r.client.Incr(ctx, r.genKey()).Err(); err != nil {
		r.logger.Warn("catalog cache invalidate failed", zap.Error(err))
		return
	}
	if ok {
		if err := r.client.Del(ctx, r.hashKey(prev)).Err(); err != nil {
			r.logger.Warn("catalog cache cleanup failed", zap.Error(err))
		}
	}
}
