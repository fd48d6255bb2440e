package feed

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("feed not found")

const (
	DefaultTTL      = 60
	DefaultLanguage = "en"
)

var DefaultCategories = []string{"space", "rockets", "launches"}

// DefaultConfigs are served when the feeds directory does not exist.
func DefaultConfigs() []*Config {
	return []*Config{
		{
			Name:        "rss",
			Title:       "Launch Tracker - Upcoming",
			Description: "Stay up to date with the latest rocket launches",
			Filter:      FilterAll,
		},
		{
			Name:        "rss-no-starlink",
			Title:       "Upcoming Launches (No Starlink)",
			Description: "Stay up to date with the latest rocket launches, excluding Starlink missions",
			Filter:      FilterExcludeStarlink,
		},
		{
			Name:        "rss-starship",
			Title:       "Upcoming Starship Launches",
			Description: "Stay up to date with upcoming Starship launches",
			Filter:      FilterStarshipOnly,
		},
		{
			Name:        "rss-crewed",
			Title:       "Upcoming Crewed Launches",
			Description: "Stay up to date with upcoming crewed spaceflights",
			Filter:      FilterCrewedOnly,
		},
	}
}

type ConfigCache struct {
	feedsDir string
	cache    map[string]*Config
	mu       sync.RWMutex
}

func NewConfigCache(feedsDir string) *ConfigCache {
	return &ConfigCache{
		feedsDir: feedsDir,
		cache:    make(map[string]*Config),
	}
}

// Run loads every *.yml file in the feeds directory, replacing the current
// set atomically. A missing directory installs DefaultConfigs.
func (cc *ConfigCache) Run() error {
	loaded := make(map[string]*Config)

	if _, err := os.Stat(cc.feedsDir); os.IsNotExist(err) {
		for _, feedConfig := range DefaultConfigs() {
			applyDefaults(feedConfig)
			loaded[feedConfig.Name] = feedConfig
		}
		slog.Debug("Feeds directory not found, using built-in feeds", "dir", cc.feedsDir, "count", len(loaded))
	} else {
		files, err := filepath.Glob(filepath.Join(cc.feedsDir, "*.yml"))
		if err != nil {
			return fmt.Errorf("failed to find YML files: %w", err)
		}

		for _, file := range files {
			feedName := strings.TrimSuffix(filepath.Base(file), ".yml")

			feedConfig, err := cc.parseConfig(file)
			if err != nil {
				return fmt.Errorf("error loading %s: %w", file, err)
			}
			feedConfig.Name = feedName

			if err := cc.validateConfig(feedConfig); err != nil {
				return fmt.Errorf("invalid config %s: %w", file, err)
			}

			loaded[feedName] = feedConfig
			slog.Debug("Configuration loaded", "feed", feedName, "filter", feedConfig.Filter, "filters", len(feedConfig.Filters))
		}
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache = loaded

	return nil
}

func (cc *ConfigCache) GetConfig(feedName string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	feedConfig, ok := cc.cache[feedName]
	if !ok {
		return nil, fmt.Errorf("feed config with name '%s': %w", feedName, ErrNotFound)
	}
	return feedConfig, nil
}

func (cc *ConfigCache) GetConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	return maps.Clone(cc.cache)
}

// GetNames returns the loaded feed names in sorted order.
func (cc *ConfigCache) GetNames() []string {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	return slices.Sorted(maps.Keys(cc.cache))
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var feedConfig Config
	if err := yaml.Unmarshal(data, &feedConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&feedConfig)
	return &feedConfig, nil
}

func applyDefaults(feedConfig *Config) {
	if feedConfig.Filter == "" {
		feedConfig.Filter = FilterAll
	}
	if feedConfig.TTL == 0 {
		feedConfig.TTL = DefaultTTL
	}
	if feedConfig.Language == "" {
		feedConfig.Language = DefaultLanguage
	}
	if feedConfig.Categories == nil {
		feedConfig.Categories = slices.Clone(DefaultCategories)
	}
}

func (cc *ConfigCache) validateConfig(feedConfig *Config) error {
	if feedConfig == nil {
		return fmt.Errorf("feedConfig is nil")
	}

	requiredFeedFields := map[string]string{
		"feed name":  feedConfig.Name,
		"feed title": feedConfig.Title,
	}

	for fieldName, fieldValue := range requiredFeedFields {
		if fieldValue == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}

	nonNegativeFields := map[string]int{
		"ttl":       feedConfig.TTL,
		"max items": feedConfig.MaxItems,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if _, ok := LookupFilter(feedConfig.Filter); !ok {
		return fmt.Errorf("unknown filter: %s", feedConfig.Filter)
	}

	for i, filter := range feedConfig.Filters {
		if !filterFields[filter.Field] {
			return fmt.Errorf("invalid filter field at index %d: %s", i, filter.Field)
		}
		if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
			return fmt.Errorf("filter at index %d must have at least one include or exclude rule", i)
		}
	}

	return nil
}
