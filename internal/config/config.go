// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DataDir    string
	UploadsDir string
	SiteDir    string
	DBPath     string
	SessionTTL time.Duration
}

// ServesSite reports whether the server should also serve the public site's
// static files. An empty SiteDir means API only.
func (c *Config) ServesSite() bool {
	return c.SiteDir != ""
}

// Load reads configuration from environment variables and returns a validated
// Config. Everything is optional with defaults: STUDIO_LISTEN_ADDR
// (127.0.0.1:3000), STUDIO_DATA_DIR (data), STUDIO_UPLOADS_DIR (uploads),
// STUDIO_SITE_DIR (empty, static serving disabled), STUDIO_DB_PATH
// (interactions.db), STUDIO_SESSION_TTL (24h).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:3000"
	if v, ok := os.LookupEnv("STUDIO_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dataDir := "data"
	if v, ok := os.LookupEnv("STUDIO_DATA_DIR"); ok && v != "" {
		dataDir = v
	}

	uploadsDir := "uploads"
	if v, ok := os.LookupEnv("STUDIO_UPLOADS_DIR"); ok && v != "" {
		uploadsDir = v
	}

	siteDir := os.Getenv("STUDIO_SITE_DIR")

	dbPath := "interactions.db"
	if v, ok := os.LookupEnv("STUDIO_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	sessionTTL := 24 * time.Hour
	if v, ok := os.LookupEnv("STUDIO_SESSION_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("STUDIO_SESSION_TTL has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("STUDIO_SESSION_TTL must be positive, got %q", v)
		}
		sessionTTL = parsed
	}

	return &Config{
		ListenAddr: listenAddr,
		DataDir:    dataDir,
		UploadsDir: uploadsDir,
		SiteDir:    siteDir,
		DBPath:     dbPath,
		SessionTTL: sessionTTL,
	}, nil
}
