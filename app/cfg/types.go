package cfg

import "time"

type Cfg struct {
	// HTTP server
	Port    string
	BaseUrl string
	SiteUrl string

	// Feeds
	FeedsDir     string
	CacheMaxAge  time.Duration
	ConfigReload time.Duration

	// Upstream
	UpstreamURL  string
	UserAgent    string
	FetchTimeout time.Duration

	// Cache
	RedisAddr      string
	RedisRetention time.Duration

	// Background refresh
	RefreshInterval time.Duration
	WorkerCount     int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
