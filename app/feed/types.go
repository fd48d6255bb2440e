package feed

import "github.com/lysyi3m/apogee-rss/app/launch"

// Config describes one published feed variant. Name is derived from the
// file name (without the .yml extension).
type Config struct {
	Name        string
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Link        string         `yaml:"link"`
	Language    string         `yaml:"language"`
	ImageURL    string         `yaml:"image_url"`
	TTL         int            `yaml:"ttl"` // minutes
	MaxItems    int            `yaml:"max_items"`
	Categories  []string       `yaml:"categories"`
	Filter      string         `yaml:"filter"`
	Filters     []ConfigFilter `yaml:"filters"`
}

// ConfigFilter narrows a feed further by substring rules on one mission field.
type ConfigFilter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// Item is one rendered RSS entry.
type Item struct {
	GUID          string
	Title         string
	Link          string
	Description   string
	PublishedAt   string
	Categories    []string
	EnclosureURL  string
	EnclosureType string
}

// FilterFunc decides whether a mission stays in a feed.
type FilterFunc func(launch.Mission) bool
