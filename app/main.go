package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/apogee-rss/app/api"
	"github.com/lysyi3m/apogee-rss/app/cache"
	"github.com/lysyi3m/apogee-rss/app/cfg"
	"github.com/lysyi3m/apogee-rss/app/feed"
	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/metrics"
	"github.com/lysyi3m/apogee-rss/app/tasks"
)

const serviceName = "apogee-rss"

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Apogee RSS", "version", appCfg.Version, "port", appCfg.Port)
	metrics.Init(serviceName, appCfg.Version)

	configCache := feed.NewConfigCache(appCfg.FeedsDir)
	if err := configCache.Run(); err != nil {
		slog.Error("Failed to load feed configurations", "dir", appCfg.FeedsDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Feed configurations loaded", "count", configCache.GetConfigCount(), "feeds", configCache.GetNames())

	missionCache := newCache(appCfg)
	defer missionCache.Close()

	client := launch.NewClient(&http.Client{}, appCfg.UpstreamURL, appCfg.UserAgent, appCfg.FetchTimeout)
	store := launch.NewStore(client, missionCache, appCfg.CacheMaxAge)
	generator := feed.NewGenerator(appCfg.PublicURL(), appCfg.SiteUrl, appCfg.Version)

	scheduler := tasks.NewScheduler(configCache, store, generator, tasks.Options{
		RefreshInterval: appCfg.RefreshInterval,
		ReloadInterval:  appCfg.ConfigReload,
		WorkerCount:     appCfg.WorkerCount,
	})
	scheduler.Start()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "refresh_interval", appCfg.RefreshInterval.String())

	handler := api.NewHandler(configCache, store, generator, scheduler, appCfg.PublicURL(), appCfg.CacheMaxAge, appCfg.Version)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr, "public_url", appCfg.PublicURL())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	scheduler.Stop()
	slog.Info("Shutdown complete")
}

// newCache prefers Redis when configured and reachable, otherwise keeps
// payloads in process memory.
func newCache(appCfg *cfg.Cfg) cache.Cache {
	if appCfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisCache, err := cache.NewRedisCache(ctx, appCfg.RedisAddr, appCfg.RedisRetention)
	if err != nil {
		slog.Warn("Redis unavailable, using in-memory cache", "addr", appCfg.RedisAddr, "error", err)
		return cache.NewMemoryCache()
	}

	slog.Info("Using Redis cache", "addr", appCfg.RedisAddr)
	return redisCache
}
