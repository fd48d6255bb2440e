package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

type RefreshMissionsTask struct {
	Task
	store MissionSource
}

func NewRefreshMissionsTask(store MissionSource) *RefreshMissionsTask {
	return &RefreshMissionsTask{
		Task:  NewTask(TaskTypeRefreshMissions, ""),
		store: store,
	}
}

func (t *RefreshMissionsTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	missions, err := t.store.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh missions: %w", err)
	}

	slog.Info("Task completed",
		"type", "RefreshMissions",
		"missions", len(missions),
		"duration", t.GetDuration().String())

	return nil
}
