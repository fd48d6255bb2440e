package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/apogee-rss/app/feed"
)

// WarmFeedTask assembles one feed in the background so assembly faults show
// up in logs and metrics before a reader requests the feed.
type WarmFeedTask struct {
	Task
	FeedConfig *feed.Config
	store      MissionSource
	generator  FeedGenerator
}

func NewWarmFeedTask(feedConfig *feed.Config, store MissionSource, generator FeedGenerator) *WarmFeedTask {
	return &WarmFeedTask{
		Task:       NewTask(TaskTypeWarmFeed, feedConfig.Name),
		FeedConfig: feedConfig,
		store:      store,
		generator:  generator,
	}
}

func (t *WarmFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	missions, err := t.store.Missions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load missions: %w", err)
	}

	rss, err := t.generator.Run(missions, t.FeedConfig)
	if err != nil {
		return fmt.Errorf("failed to generate feed: %w", err)
	}

	slog.Debug("Task completed",
		"type", "WarmFeed",
		"feed", t.FeedName,
		"items", strings.Count(rss, "<item>"),
		"bytes", len(rss))

	return nil
}
