package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL used for feed self links (e.g., https://feeds.example.com)"`
	SiteUrl string `long:"site-url" env:"SITE_URL" default:"https://apogee-rss.vercel.app" description:"Site URL used for mission links and images"`

	// Feeds
	FeedsDir     string `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing feed configuration files"`
	CacheMaxAge  int    `long:"cache-max-age" env:"CACHE_MAX_AGE" default:"3600" description:"Upstream cache lifetime and Cache-Control max-age in seconds"`
	ConfigReload int    `long:"config-reload" env:"CONFIG_RELOAD_INTERVAL" default:"300" description:"Feed configuration reload interval in seconds (0 disables)"`

	// Upstream
	UpstreamURL  string `long:"upstream-url" env:"UPSTREAM_URL" default:"https://ll.thespacedevs.com/2.2.0/launch/upcoming/?mode=detailed" description:"Launch Library upcoming launches endpoint"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Apogee RSS/1.0" description:"User agent string for upstream requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Upstream request timeout in seconds"`

	// Cache
	RedisAddr      string `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for the shared cache (in-memory when empty)"`
	RedisRetention int    `long:"redis-retention" env:"REDIS_RETENTION" default:"86400" description:"How long Redis keeps cached payloads in seconds"`

	// Background refresh
	RefreshInterval int `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"3600" description:"Background refresh interval in seconds (0 disables)"`
	WorkerCount     int `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses flags and environment into a configuration. It returns nil, nil
// when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:            raw.Port,
		BaseUrl:         raw.BaseUrl,
		SiteUrl:         raw.SiteUrl,
		FeedsDir:        raw.FeedsDir,
		CacheMaxAge:     seconds(raw.CacheMaxAge),
		ConfigReload:    seconds(raw.ConfigReload),
		UpstreamURL:     raw.UpstreamURL,
		UserAgent:       raw.UserAgent,
		FetchTimeout:    seconds(raw.FetchTimeout),
		RedisAddr:       raw.RedisAddr,
		RedisRetention:  seconds(raw.RedisRetention),
		RefreshInterval: seconds(raw.RefreshInterval),
		WorkerCount:     raw.WorkerCount,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

// PublicURL is the externally visible base of this service.
func (c *Cfg) PublicURL() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return fmt.Sprintf("http://localhost:%s", c.Port)
}

func (c *Cfg) validate() error {
	nonNegative := map[string]time.Duration{
		"cache max age":    c.CacheMaxAge,
		"config reload":    c.ConfigReload,
		"redis retention":  c.RedisRetention,
		"refresh interval": c.RefreshInterval,
	}
	for name, value := range nonNegative {
		if value < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	if c.FetchTimeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
