package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lysyi3m/apogee-rss/app/feed"
	"github.com/lysyi3m/apogee-rss/app/launch"
)

// MockStore fails the first failures calls to Refresh. With stale set, the
// failures come back with cached missions the way launch.Store reports them.
type MockStore struct {
	failures     int32
	stale        bool
	refreshCalls atomic.Int32
	missionCalls atomic.Int32
}

func (m *MockStore) Missions(ctx context.Context) ([]launch.Mission, error) {
	m.missionCalls.Add(1)
	return []launch.Mission{{ID: "1", Name: "Falcon 9"}}, nil
}

func (m *MockStore) Refresh(ctx context.Context) ([]launch.Mission, error) {
	if m.refreshCalls.Add(1) <= m.failures {
		if m.stale {
			return []launch.Mission{{ID: "1"}}, errors.Join(launch.ErrStale, errors.New("upstream 503"))
		}
		return nil, errors.New("upstream unavailable")
	}
	return []launch.Mission{{ID: "1"}, {ID: "2"}}, nil
}

type MockGenerator struct {
	mu    sync.Mutex
	feeds []string
	err   error
}

func (m *MockGenerator) Run(missions []launch.Mission, feedConfig *feed.Config) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feeds = append(m.feeds, feedConfig.Name)
	if m.err != nil {
		return "", m.err
	}
	return "<rss><item></item></rss>", nil
}

func (m *MockGenerator) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.feeds)
}

type MockConfigCache struct {
	configs map[string]*feed.Config
	err     error
	runs    atomic.Int32
}

func (m *MockConfigCache) Run() error {
	m.runs.Add(1)
	return m.err
}

func (m *MockConfigCache) GetConfigs() map[string]*feed.Config {
	return m.configs
}

func newMockConfigCache() *MockConfigCache {
	return &MockConfigCache{configs: map[string]*feed.Config{
		"rss":          {Name: "rss", Filter: feed.FilterAll},
		"rss-starship": {Name: "rss-starship", Filter: feed.FilterStarshipOnly},
	}}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestNewTask(t *testing.T) {
	a := NewTask(TaskTypeWarmFeed, "rss")
	b := NewTask(TaskTypeWarmFeed, "rss")

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if a.MaxRetries != DefaultMaxRetries {
		t.Errorf("Expected max retries %d, got %d", DefaultMaxRetries, a.MaxRetries)
	}
	if a.GetDuration() != 0 {
		t.Errorf("Expected zero duration before start, got %v", a.GetDuration())
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		if !a.CanRetry() {
			t.Fatalf("Expected retry %d to be allowed", i+1)
		}
		a.IncrementRetryCount()
	}
	if a.CanRetry() {
		t.Error("Expected no retries left")
	}
}

func TestRefreshMissionsTask_Execute(t *testing.T) {
	store := &MockStore{failures: 1}
	task := NewRefreshMissionsTask(store)

	if err := task.Execute(context.Background()); err == nil {
		t.Error("Expected error on first refresh")
	}
	if err := task.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if task.GetType() != TaskTypeRefreshMissions {
		t.Errorf("Expected type %s, got %s", TaskTypeRefreshMissions, task.GetType())
	}
}

func TestRefreshMissionsTask_StaleIsFailure(t *testing.T) {
	task := NewRefreshMissionsTask(&MockStore{failures: 1, stale: true})

	err := task.Execute(context.Background())
	if !errors.Is(err, launch.ErrStale) {
		t.Errorf("Expected stale refresh to fail with ErrStale, got %v", err)
	}
}

func TestRefreshMissionsTask_CancelledContext(t *testing.T) {
	store := &MockStore{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRefreshMissionsTask(store).Execute(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if store.refreshCalls.Load() != 0 {
		t.Error("Expected no refresh on cancelled context")
	}
}

func TestReloadFeedConfigTask_Execute(t *testing.T) {
	configCache := newMockConfigCache()
	if err := NewReloadFeedConfigTask(configCache).Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	configCache.err = errors.New("bad yaml")
	if err := NewReloadFeedConfigTask(configCache).Execute(context.Background()); err == nil {
		t.Error("Expected reload error")
	}
}

func TestWarmFeedTask_Execute(t *testing.T) {
	generator := &MockGenerator{}
	feedConfig := &feed.Config{Name: "rss"}
	task := NewWarmFeedTask(feedConfig, &MockStore{}, generator)

	if task.GetFeedName() != "rss" {
		t.Errorf("Expected feed name 'rss', got '%s'", task.GetFeedName())
	}
	if err := task.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	generator.err = errors.New("invalid document")
	if err := task.Execute(context.Background()); err == nil {
		t.Error("Expected generator error")
	}
}

func TestScheduler_StartupRefreshAndWarm(t *testing.T) {
	store := &MockStore{}
	generator := &MockGenerator{}
	s := NewScheduler(newMockConfigCache(), store, generator, Options{WorkerCount: 2})

	s.Start()
	defer s.Stop()

	waitFor(t, "startup refresh", func() bool { return store.refreshCalls.Load() == 1 })
	waitFor(t, "feed warm-up", func() bool { return generator.count() == 2 })
}

func TestScheduler_RetriesFailedTask(t *testing.T) {
	store := &MockStore{failures: 2}
	s := NewScheduler(newMockConfigCache(), store, &MockGenerator{}, Options{WorkerCount: 1})
	s.retryBase = time.Millisecond

	s.Start()
	defer s.Stop()

	waitFor(t, "refresh retries", func() bool { return store.refreshCalls.Load() == 3 })
}

func TestScheduler_RetriesStaleRefresh(t *testing.T) {
	store := &MockStore{failures: 1, stale: true}
	s := NewScheduler(newMockConfigCache(), store, &MockGenerator{}, Options{WorkerCount: 1})
	s.retryBase = time.Millisecond

	s.Start()
	defer s.Stop()

	waitFor(t, "stale refresh retry", func() bool { return store.refreshCalls.Load() == 2 })
}

func TestScheduler_PeriodicReload(t *testing.T) {
	configCache := newMockConfigCache()
	s := NewScheduler(configCache, &MockStore{}, &MockGenerator{}, Options{
		ReloadInterval: 10 * time.Millisecond,
		WorkerCount:    1,
	})

	s.Start()
	defer s.Stop()

	waitFor(t, "config reload", func() bool { return configCache.runs.Load() >= 2 })
}

func TestScheduler_RetryDelay(t *testing.T) {
	s := NewScheduler(newMockConfigCache(), &MockStore{}, &MockGenerator{}, Options{})

	expected := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 30 * time.Second, 30 * time.Second}
	for i, want := range expected {
		if got := s.retryDelay(i + 1); got != want {
			t.Errorf("Attempt %d: expected %v, got %v", i+1, want, got)
		}
	}
}

func TestScheduler_EnqueueTask(t *testing.T) {
	s := NewScheduler(newMockConfigCache(), &MockStore{}, &MockGenerator{}, Options{})

	for i := 0; i < queueSize; i++ {
		if err := s.EnqueueTask(NewRefreshMissionsTask(&MockStore{})); err != nil {
			t.Fatalf("Expected task %d to be queued, got: %v", i, err)
		}
	}
	if s.QueueLength() != queueSize {
		t.Errorf("Expected queue length %d, got %d", queueSize, s.QueueLength())
	}
	if err := s.EnqueueTask(NewRefreshMissionsTask(&MockStore{})); err == nil {
		t.Error("Expected error when queue is full")
	}

	s.Stop()
	if err := s.EnqueueTask(NewRefreshMissionsTask(&MockStore{})); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled after stop, got %v", err)
	}
}
