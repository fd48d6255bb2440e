package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

const (
	queueSize   = 100
	taskTimeout = 5 * time.Minute
	maxRetryGap = 30 * time.Second
)

type Options struct {
	RefreshInterval time.Duration // 0 disables periodic refresh
	ReloadInterval  time.Duration // 0 disables periodic config reload
	WorkerCount     int
}

type Scheduler struct {
	configCache ConfigReloader
	store       MissionSource
	generator   FeedGenerator
	opts        Options
	retryBase   time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache ConfigReloader, store MissionSource, generator FeedGenerator, opts Options) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	if opts.WorkerCount < 1 {
		opts.WorkerCount = 1
	}

	return &Scheduler{
		configCache: configCache,
		store:       store,
		generator:   generator,
		opts:        opts,
		retryBase:   time.Second,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, queueSize),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.opts.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		refreshC, stopRefresh := tick(s.opts.RefreshInterval)
		defer stopRefresh()
		reloadC, stopReload := tick(s.opts.ReloadInterval)
		defer stopReload()

		s.enqueueRefresh()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-refreshC:
				s.enqueueRefresh()
			case <-reloadC:
				if err := s.EnqueueTask(NewReloadFeedConfigTask(s.configCache)); err != nil {
					slog.Warn("Failed to enqueue ReloadFeedConfigTask", "error", err)
				}
			}
		}
	}()
}

// Stop cancels running tasks and waits for workers to exit. Queued tasks are
// dropped.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	select {
	case s.taskQueue <- task:
		return nil
	default:
		return fmt.Errorf("task queue is full")
	}
}

// QueueLength reports tasks waiting for a worker.
func (s *Scheduler) QueueLength() int {
	return len(s.taskQueue)
}

func (s *Scheduler) enqueueRefresh() {
	if err := s.EnqueueTask(NewRefreshMissionsTask(s.store)); err != nil {
		slog.Warn("Failed to enqueue RefreshMissionsTask", "error", err)
		return
	}

	feedConfigs := s.configCache.GetConfigs()
	slog.Debug("Scheduling feed warm-up", "count", len(feedConfigs))

	for _, feedConfig := range feedConfigs {
		if err := s.EnqueueTask(NewWarmFeedTask(feedConfig, s.store, s.generator)); err != nil {
			slog.Warn("Failed to enqueue WarmFeedTask", "feed", feedConfig.Name, "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task := <-s.taskQueue:
			s.executeTask(id, task)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, taskTimeout)
	defer cancel()

	err := task.Execute(taskCtx)
	if err == nil {
		return
	}

	slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

	if !task.CanRetry() {
		slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		return
	}

	task.IncrementRetryCount()
	retryDelay := s.retryDelay(task.GetRetryCount())

	slog.Warn("Task retry scheduled", "type", string(task.GetType()), "feed", task.GetFeedName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

	go func() {
		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
		case <-time.After(retryDelay):
			if retryErr := s.EnqueueTask(task); retryErr != nil {
				slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
			}
		}
	}()
}

// retryDelay doubles from retryBase for each attempt, capped at 30s.
func (s *Scheduler) retryDelay(attempt int) time.Duration {
	delay := s.retryBase << uint(attempt-1)
	if delay > maxRetryGap || delay <= 0 {
		delay = maxRetryGap
	}
	return delay
}

// tick returns a nil channel for a non-positive interval so the select case
// never fires.
func tick(interval time.Duration) (<-chan time.Time, func()) {
	if interval <= 0 {
		return nil, func() {}
	}
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
