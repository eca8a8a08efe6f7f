package mem

import (
	"context"
	"sync"
	"time"
)

// CatalogCache holds serialized catalog reads keyed by filter. Invalidate
// drops every entry at once and starts a new generation; catalog writes call
// it. Readers take Generation before loading from the database and pass it to
// Set, which discards the value if an invalidation happened in between.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Generation(ctx context.Context) (uint64, bool)
	Set(ctx context.Context, gen uint64, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCatalogCache is the single-process CatalogCache.
type MemoryCatalogCache struct {
	mu   sync.RWMutex
	data map[string]entry
	gen  uint64
	now  func() time.Time
}

func NewMemoryCatalogCache() *MemoryCatalogCache {
	return &MemoryCatalogCache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryCatalogCache) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *MemoryCatalogCache) Generation(_ context.Context) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen, true
}

func (s *MemoryCatalogCache) Set(_ context.Context, gen uint64, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.data[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}

func (s *MemoryCatalogCache) Invalidate(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.data = make(map[string]entry)
}
