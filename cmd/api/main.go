package main

import (
	"net/http"
	"os"
	"time"

	"child-growth-tracker/internal/adapters/auth/jwtauth"
	"child-growth-tracker/internal/adapters/growthapi"
	"child-growth-tracker/internal/adapters/kvstore"
	pg "child-growth-tracker/internal/adapters/storage/postgres"
	"child-growth-tracker/internal/config"
	"child-growth-tracker/internal/platform/logger"
	"child-growth-tracker/internal/router"
)

// @title Child Growth Tracker API
// @version 1.0
// @description Child registry and WHO growth monitoring service.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	opts := router.Options{
		BasePath: cfg.BasePath,
		Logger:   log,
	}

	if v := jwtauth.NewVerifier(cfg.JWTSecret); v.IsConfigured() {
		opts.AuthVerifier = v
	} else {
		log.Warn("no JWT_SECRET set, running in dev mode", nil)
	}

	switch {
	case cfg.UpstreamBaseURL != "":
		api, err := growthapi.NewClient(growthapi.Config{
			BaseURL: cfg.UpstreamBaseURL,
			APIKey:  cfg.UpstreamAPIKey,
			Timeout: cfg.UpstreamTimeout,
		})
		if err != nil {
			log.Error("invalid upstream config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Upstream = api

		if cfg.SnapshotDir != "" {
			kv, err := kvstore.NewFile(cfg.SnapshotDir)
			if err != nil {
				log.Error("cannot open snapshot dir", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
			opts.KV = kv
		}
		log.Info("upstream mode", map[string]any{"base_url": cfg.UpstreamBaseURL})

	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("cannot open database", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("postgres mode", nil)

	default:
		log.Info("in-memory mode", nil)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
