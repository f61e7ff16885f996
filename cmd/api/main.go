// ABOUTME: Main entry point for the Mediawatch API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediawatch-api/adapters/press"
	"mediawatch-api/adapters/rss"
	"mediawatch-api/api"
	"mediawatch-api/core/articles"
	"mediawatch-api/core/interfaces"
	"mediawatch-api/core/language"
	"mediawatch-api/core/normalize"
	"mediawatch-api/core/snapshot"
	stdhttp "mediawatch-api/infrastructure/http/standard"
	logruslogger "mediawatch-api/infrastructure/logger/logrus"
	filestore "mediawatch-api/infrastructure/store/file"
	memorystore "mediawatch-api/infrastructure/store/memory"
	redisstore "mediawatch-api/infrastructure/store/redis"
	sqlitestore "mediawatch-api/infrastructure/store/sqlite"
	"mediawatch-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Mediawatch API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"store_type": cfg.Store.Type,
	})

	store := buildStore(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Pipeline.FetchTimeout) * time.Second)

	detector := language.NewDetector(cfg.Pipeline.LanguageThreshold)
	normalizer := normalize.New(detector)
	snapshots := snapshot.NewService(store, logger)

	pipeline := articles.NewService(snapshots, normalizer, logger, cfg.Pipeline.DefaultN)

	if len(cfg.Sources.RSSFeeds) > 0 {
		src := articles.Source{
			Fetcher: rss.NewFetcher(cfg.Sources.RSSFeeds, httpClient, logger),
			Map:     normalize.RSSMap,
		}
		if err := pipeline.RegisterSource("rss", src); err != nil {
			log.Fatalf("Failed to register rss source: %v", err)
		}
	}

	if cfg.Sources.PressBaseURL != "" {
		src := articles.Source{
			Fetcher: press.NewFetcher(cfg.Sources.PressBaseURL, httpClient, logger),
			Map:     normalize.PressMap,
		}
		if err := pipeline.RegisterSource("press", src); err != nil {
			log.Fatalf("Failed to register press source: %v", err)
		}
	}

	logger.Info("Sources registered", map[string]interface{}{
		"services": pipeline.Services(),
	})

	handler := api.NewHandler(api.Config{
		Logger:    logger,
		RateRPS:   2,
		RateBurst: 10,
	}, pipeline)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildStore selects the snapshot store backend, falling back to memory when
// a persistent backend cannot be reached.
func buildStore(cfg *config.Config, logger interfaces.Logger) interfaces.SnapshotStore {
	switch cfg.Store.Type {
	case "redis":
		store, err := redisstore.NewStore(cfg.Store.Redis)
		if err == nil {
			logger.Info("Using Redis snapshot store", map[string]interface{}{
				"address": cfg.Store.Redis.Address,
			})
			return store
		}
		logger.Error("Failed to create Redis store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
		return memorystore.NewStore()

	case "sqlite":
		store, err := sqlitestore.NewStore(cfg.Store.SQLitePath)
		if err == nil {
			logger.Info("Using SQLite snapshot store", map[string]interface{}{
				"path": cfg.Store.SQLitePath,
			})
			return store
		}
		logger.Error("Failed to create SQLite store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
		return memorystore.NewStore()

	case "memory":
		logger.Info("Using memory snapshot store", nil)
		return memorystore.NewStore()

	default:
		store, err := filestore.NewStore(cfg.Store.FileDir)
		if err == nil {
			logger.Info("Using file snapshot store", map[string]interface{}{
				"dir": cfg.Store.FileDir,
			})
			return store
		}
		logger.Error("Failed to create file store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
		return memorystore.NewStore()
	}
}
