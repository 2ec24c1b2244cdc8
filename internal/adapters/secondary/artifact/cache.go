package artifact

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"bank-marketing-service/internal/core/domain"
	"bank-marketing-service/internal/core/ports/output"
)

// CachedResolver makes resolution idempotent per target path within one
// process: concurrent callers collapse into a single in-flight attempt and
// later callers get the memoized bundle without touching the resolver.
// Cross-process dedup relies on the fast path and atomic rename in the
// wrapped resolver, not on this cache.
type CachedResolver struct {
	inner ports.ArtifactResolver
	group singleflight.Group

	mu      sync.Mutex
	bundles map[string]*domain.ArtifactBundle
}

// NewCachedResolver wraps an ArtifactResolver with per-target memoization.
func NewCachedResolver(inner ports.ArtifactResolver) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		bundles: make(map[string]*domain.ArtifactBundle),
	}
}

// Resolve returns the memoized bundle for targetDir when present, unless
// force is set. Errors are not memoized.
func (c *CachedResolver) Resolve(ctx context.Context, locator, targetDir string, force bool) (*domain.ArtifactBundle, error) {
	if !force {
		c.mu.Lock()
		if bundle, ok := c.bundles[targetDir]; ok {
			c.mu.Unlock()
			return bundle, nil
		}
		c.mu.Unlock()
	}

	value, err, _ := c.group.Do(targetDir, func() (interface{}, error) {
		bundle, err := c.inner.Resolve(ctx, locator, targetDir, force)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.bundles[targetDir] = bundle
		c.mu.Unlock()
		return bundle, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.ArtifactBundle), nil
}
