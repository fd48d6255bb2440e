package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

type ReloadFeedConfigTask struct {
	Task
	configCache ConfigReloader
}

func NewReloadFeedConfigTask(configCache ConfigReloader) *ReloadFeedConfigTask {
	return &ReloadFeedConfigTask{
		Task:        NewTask(TaskTypeReloadFeedConfig, ""),
		configCache: configCache,
	}
}

// Execute re-reads the feed definitions. On error the previously loaded set
// stays in place.
func (t *ReloadFeedConfigTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.configCache.Run(); err != nil {
		return fmt.Errorf("failed to reload feed configurations: %w", err)
	}

	slog.Debug("Task completed",
		"type", "ReloadFeedConfig",
		"feeds", len(t.configCache.GetConfigs()))

	return nil
}
