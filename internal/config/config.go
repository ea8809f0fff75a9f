// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	BasePath string

	// DBDSN enables postgres storage when set.
	DBDSN string

	// UpstreamBaseURL enables upstream mode: operations go to the remote
	// growth backend first and fall back to the local snapshot.
	UpstreamBaseURL string
	UpstreamAPIKey  string
	UpstreamTimeout time.Duration

	// SnapshotDir is where the local snapshot lives in upstream mode; empty
	// keeps it in memory (dev).
	SnapshotDir string

	// JWTSecret enables token verification; empty leaves the service in dev
	// mode (X-Debug-User-ID header).
	JWTSecret string
}

// Load reads configuration. A missing .env is fine; the environment wins.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		BasePath:        normalizeBasePath(getEnv("BASE_PATH", "/api/v1")),
		DBDSN:           os.Getenv("DB_DSN"),
		UpstreamBaseURL: os.Getenv("UPSTREAM_BASE_URL"),
		UpstreamAPIKey:  os.Getenv("UPSTREAM_API_KEY"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		SnapshotDir:     os.Getenv("SNAPSHOT_DIR"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
