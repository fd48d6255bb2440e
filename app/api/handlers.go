package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/apogee-rss/app/feed"
	"github.com/lysyi3m/apogee-rss/app/launch"
)

const rssContentType = "application/rss+xml; charset=utf-8"

func NewHandler(configs FeedConfigs, store MissionStore, generator GeneratorInterface,
	queue TaskQueue, publicURL string, cacheMaxAge time.Duration, version string) *Handler {
	return &Handler{
		configs:     configs,
		store:       store,
		generator:   generator,
		queue:       queue,
		publicURL:   strings.TrimSuffix(publicURL, "/"),
		cacheMaxAge: cacheMaxAge,
		version:     version,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")

	feedConfig, err := h.configs.GetConfig(name)
	if err != nil {
		if errors.Is(err, feed.ErrNotFound) {
			slog.Debug("Feed configuration not found", "feed", name)
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("feed '%s' not found", name)})
			return
		}
		slog.Error("Feed configuration error", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	missions, err := h.store.Missions(c.Request.Context())
	if err != nil {
		slog.Error("Failed to load missions", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch upcoming missions"})
		return
	}

	rss, err := h.generator.Run(missions, feedConfig)
	if err != nil {
		slog.Error("RSS generation error", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate feed"})
		return
	}

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
	c.Header("X-Feed-Items", strconv.Itoa(strings.Count(rss, "<item>")))
	c.Header("X-Feed-Name", name)

	c.Data(http.StatusOK, rssContentType, []byte(rss))
}

// UpdateFeeds forces an upstream refresh so every feed is rebuilt from fresh
// data on its next request.
func (h *Handler) UpdateFeeds(c *gin.Context) {
	missions, err := h.store.Refresh(c.Request.Context())
	if err != nil {
		slog.Error("Feed update failed", "error", err)
		body := gin.H{
			"success": false,
			"message": err.Error(),
		}
		if errors.Is(err, launch.ErrStale) {
			body["stale_launches_count"] = len(missions)
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	slog.Info("Refreshed launch data", "launches", len(missions))

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Launch data refreshed and feeds revalidated",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"launches_count": len(missions),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	missionCount, fetchedAt := h.store.Stats()

	health := map[string]interface{}{
		"status":                "ok",
		"version":               h.version,
		"timestamp":             time.Now().In(time.Local).Format(time.RFC3339),
		"loaded_configurations": h.configs.GetConfigCount(),
		"missions":              missionCount,
	}

	if !fetchedAt.IsZero() {
		health["last_fetched_at"] = fetchedAt.In(time.Local).Format(time.RFC3339)
	}

	if h.queue != nil {
		health["queued_tasks"] = h.queue.QueueLength()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetIndex(c *gin.Context) {
	names := h.configs.GetNames()

	feeds := make(map[string]string, len(names))
	for _, name := range names {
		feeds[name] = fmt.Sprintf("%s/api/%s", h.publicURL, name)
	}

	c.JSON(http.StatusOK, gin.H{
		"service":     "Apogee RSS",
		"version":     h.version,
		"description": "RSS feeds of upcoming rocket launches from Launch Library 2",
		"feeds":       feeds,
		"endpoints": map[string]string{
			"feed":    "/api/<name> or /feeds/<name>",
			"refresh": "/cron/update-feeds",
			"health":  "/health",
			"metrics": "/metrics",
		},
	})
}
