package cache

import (
	"context"
	"sync"
	"time"

	"github.com/backoffice/backend/internal/application/report"
)

// InMemoryDashboardCache implements report.DashboardCache with a mutex and
// an expiry timestamp. Suitable for single-instance deployments and as a
// fallback when Redis is not configured.
type InMemoryDashboardCache struct {
	mu        sync.RWMutex
	dashboard *report.Dashboard
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryDashboardCache creates an in-memory dashboard cache
func NewInMemoryDashboardCache(ttl time.Duration) *InMemoryDashboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &InMemoryDashboardCache{ttl: ttl, now: time.Now}
}

// Get returns the cached dashboard when present and fresh
func (c *InMemoryDashboardCache) Get(ctx context.Context) (*report.Dashboard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dashboard == nil || c.now().After(c.expiresAt) {
		return nil, false
	}
	return c.dashboard, true
}

// Set stores the dashboard with the configured TTL
func (c *InMemoryDashboardCache) Set(ctx context.Context, dashboard *report.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dashboard = dashboard
	c.expiresAt = c.now().Add(c.ttl)
}

// Invalidate drops the cached dashboard
func (c *InMemoryDashboardCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dashboard = nil
	c.expiresAt = time.Time{}
}

// Ensure InMemoryDashboardCache implements DashboardCache
var _ report.DashboardCache = (*InMemoryDashboardCache)(nil)
