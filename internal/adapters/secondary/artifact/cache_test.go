package artifact

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-marketing-service/internal/core/domain"
)

// countingResolver stands in for the real resolver to observe call counts.
type countingResolver struct {
	calls int32
	delay time.Duration
	err   error
}

func (c *countingResolver) Resolve(_ context.Context, _, targetDir string, _ bool) (*domain.ArtifactBundle, error) {
	atomic.AddInt32(&c.calls, 1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.ArtifactBundle{Path: targetDir, Source: domain.LocatorRemoteURL, ResolvedAt: time.Now()}, nil
}

func TestCachedResolver_MemoizesPerTarget(t *testing.T) {
	inner := &countingResolver{}
	cached := NewCachedResolver(inner)

	first, err := cached.Resolve(context.Background(), "https://example.com/m.zip", "model", false)
	require.NoError(t, err)
	second, err := cached.Resolve(context.Background(), "https://example.com/m.zip", "model", false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.calls))

	// A different target path is its own resolution.
	_, err = cached.Resolve(context.Background(), "https://example.com/m.zip", "model-b", false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&inner.calls))
}

func TestCachedResolver_CollapsesConcurrentCallers(t *testing.T) {
	inner := &countingResolver{delay: 50 * time.Millisecond}
	cached := NewCachedResolver(inner)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cached.Resolve(context.Background(), "https://example.com/m.zip", "model", false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.calls))
}

func TestCachedResolver_ErrorsAreNotMemoized(t *testing.T) {
	inner := &countingResolver{err: domain.ErrArtifactUnavailable}
	cached := NewCachedResolver(inner)

	_, err := cached.Resolve(context.Background(), "https://example.com/m.zip", "model", false)
	assert.ErrorIs(t, err, domain.ErrArtifactUnavailable)

	inner.err = nil
	_, err = cached.Resolve(context.Background(), "https://example.com/m.zip", "model", false)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&inner.calls))
}
