package api

import (
	"context"
	"time"

	"github.com/lysyi3m/apogee-rss/app/feed"
	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/tasks"
)

type GeneratorInterface interface {
	Run(missions []launch.Mission, feedConfig *feed.Config) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type MissionStore interface {
	Missions(ctx context.Context) ([]launch.Mission, error)
	Refresh(ctx context.Context) ([]launch.Mission, error)
	Stats() (int, time.Time)
}

var _ MissionStore = (*launch.Store)(nil)

type FeedConfigs interface {
	GetConfig(name string) (*feed.Config, error)
	GetNames() []string
	GetConfigCount() int
}

var _ FeedConfigs = (*feed.ConfigCache)(nil)

type TaskQueue interface {
	QueueLength() int
}

var _ TaskQueue = (*tasks.Scheduler)(nil)

type Handler struct {
	configs     FeedConfigs
	store       MissionStore
	generator   GeneratorInterface
	queue       TaskQueue
	publicURL   string
	cacheMaxAge time.Duration
	version     string
}
