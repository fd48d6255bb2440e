package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/apogee-rss/app/cache"
	"github.com/lysyi3m/apogee-rss/app/metrics"
)

const UpcomingCacheKey = "launches:upcoming"

// ErrStale is returned by Refresh when the upstream fetch failed and only an
// older cached payload is available. The stale missions come back with it.
var ErrStale = errors.New("stale launch data")

type Fetcher interface {
	FetchUpcoming(ctx context.Context) ([]byte, error)
}

var _ Fetcher = (*Client)(nil)

// Store is a read-through cache over the upstream client. Concurrent misses
// share one fetch. On the read path a failed fetch falls back to the last
// cached payload of any age; a forced refresh reports the failure.
type Store struct {
	fetcher Fetcher
	cache   cache.Cache
	maxAge  time.Duration

	mu        sync.Mutex
	statsMu   sync.RWMutex
	count     int
	fetchedAt time.Time
}

func NewStore(fetcher Fetcher, c cache.Cache, maxAge time.Duration) *Store {
	return &Store{
		fetcher: fetcher,
		cache:   c,
		maxAge:  maxAge,
	}
}

// Missions returns the upcoming launches, fetching them when the cached copy
// is older than the store's max age.
func (s *Store) Missions(ctx context.Context) ([]Mission, error) {
	if missions, ok := s.cached(ctx, s.maxAge); ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return missions, nil
	}

	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	return s.refresh(ctx, false)
}

// Refresh fetches regardless of cache age. When the fetch fails but an older
// payload is cached, it returns that payload with an error wrapping ErrStale.
func (s *Store) Refresh(ctx context.Context) ([]Mission, error) {
	return s.refresh(ctx, true)
}

// Stats reports the size and fetch time of the last payload this store
// fetched itself.
func (s *Store) Stats() (int, time.Time) {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()
	return s.count, s.fetchedAt
}

func (s *Store) refresh(ctx context.Context, force bool) ([]Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		// another caller may have refreshed while we waited for the lock
		if missions, ok := s.cached(ctx, s.maxAge); ok {
			return missions, nil
		}
	}

	data, err := s.fetcher.FetchUpcoming(ctx)
	if err == nil {
		var missions []Mission
		missions, err = Decode(data)
		if err == nil {
			if setErr := s.cache.Set(ctx, UpcomingCacheKey, data); setErr != nil {
				slog.Warn("Failed to cache upcoming launches", "error", setErr)
			}
			s.recordFetch(len(missions))
			slog.Info("Upcoming launches refreshed", "count", len(missions), "forced", force)
			return missions, nil
		}
		err = fmt.Errorf("failed to decode launches: %w", err)
	}

	if stale, ok := s.cached(ctx, 0); ok {
		slog.Warn("Serving stale launch data after refresh failure", "error", err, "count", len(stale), "forced", force)
		if force {
			return stale, fmt.Errorf("%w: %w", ErrStale, err)
		}
		return stale, nil
	}

	return nil, fmt.Errorf("failed to load upcoming launches: %w", err)
}

func (s *Store) cached(ctx context.Context, maxAge time.Duration) ([]Mission, bool) {
	data, ok, err := s.cache.Get(ctx, UpcomingCacheKey, maxAge)
	if err != nil {
		slog.Warn("Cache lookup failed", "key", UpcomingCacheKey, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	missions, err := Decode(data)
	if err != nil {
		slog.Warn("Discarding undecodable cached launches", "error", err)
		return nil, false
	}
	return missions, true
}

func (s *Store) recordFetch(count int) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	s.count = count
	s.fetchedAt = time.Now()
}
