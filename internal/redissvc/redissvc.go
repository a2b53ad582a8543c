package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
)

const (
	dashboardCacheKey = "garment:dashboard:metrics"
	dashboardCacheTTL = 30 * time.Second
)

// RedisService wraps the optional Redis client used to cache the
// dashboard aggregates. A nil client disables caching; every lookup
// then misses and the caller recomputes.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// CachedDashboardMetrics returns the cached aggregates if present and
// fresh. Any Redis error is treated as a miss.
func (s *RedisService) CachedDashboardMetrics() (repo.Metrics, bool) {
	if s == nil || s.rdb == nil {
		return repo.Metrics{}, false
	}

	raw, err := s.rdb.Get(s.ctx, dashboardCacheKey).Result()
	if err != nil {
		return repo.Metrics{}, false
	}

	var m repo.Metrics
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return repo.Metrics{}, false
	}
	return m, true
}

// StoreDashboardMetrics caches the aggregates with a short TTL. Errors
// are ignored; the cache is best effort.
func (s *RedisService) StoreDashboardMetrics(m repo.Metrics) {
	if s == nil || s.rdb == nil {
		return
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	s.rdb.Set(s.ctx, dashboardCacheKey, raw, dashboardCacheTTL)
}

// InvalidateDashboardMetrics drops the cached aggregates after a write
// that changes them.
func (s *RedisService) InvalidateDashboardMetrics() {
	if s == nil || s.rdb == nil {
		return
	}
	s.rdb.Del(s.ctx, dashboardCacheKey)
}
