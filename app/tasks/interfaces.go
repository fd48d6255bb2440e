package tasks

import (
	"context"

	"github.com/lysyi3m/apogee-rss/app/feed"
	"github.com/lysyi3m/apogee-rss/app/launch"
)

// TaskSchedulerInterface is the worker pool used by main and the HTTP layer.
//
//	scheduler := NewScheduler(configCache, store, generator, Options{...})
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewRefreshMissionsTask(store))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

type MissionSource interface {
	Missions(ctx context.Context) ([]launch.Mission, error)
	Refresh(ctx context.Context) ([]launch.Mission, error)
}

type FeedGenerator interface {
	Run(missions []launch.Mission, feedConfig *feed.Config) (string, error)
}

type ConfigReloader interface {
	Run() error
	GetConfigs() map[string]*feed.Config
}
