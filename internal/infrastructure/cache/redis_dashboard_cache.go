package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/application/report"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisDashboardCache implements report.DashboardCache on Redis. The
// dashboard is stored as one JSON value under a fixed key with a TTL, so
// every instance behind a load balancer shares the same warm copy.
// Cache failures are logged and treated as misses; the dashboard is always
// rebuildable from the database.
type RedisDashboardCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisDashboardCache creates a Redis-backed dashboard cache
func NewRedisDashboardCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisDashboardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisDashboardCacheWithClient(client, ttl, logger), nil
}

// NewRedisDashboardCacheWithClient creates a cache with an existing Redis
// client. Useful for testing or when sharing a client across components.
func NewRedisDashboardCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisDashboardCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisDashboardCache{
		client: client,
		key:    "dashboard:latest",
		ttl:    ttl,
		logger: logger.Named("dashboard-cache"),
	}
}

// Get returns the cached dashboard when present and fresh
func (c *RedisDashboardCache) Get(ctx context.Context) (*report.Dashboard, bool) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var dashboard report.Dashboard
	if err := json.Unmarshal(payload, &dashboard); err != nil {
		c.logger.Warn("dashboard cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return &dashboard, true
}

// Set stores the dashboard with the configured TTL
func (c *RedisDashboardCache) Set(ctx context.Context, dashboard *report.Dashboard) {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		c.logger.Warn("dashboard cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached dashboard
func (c *RedisDashboardCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

// Ensure RedisDashboardCache implements DashboardCache
var _ report.DashboardCache = (*RedisDashboardCache)(nil)
