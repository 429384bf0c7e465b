package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/tashu/studio/internal/adapter/driven/disk"
	"github.com/tashu/studio/internal/adapter/driven/jsonfile"
	sqliteadapter "github.com/tashu/studio/internal/adapter/driven/sqlite"
	httphandler "github.com/tashu/studio/internal/adapter/driving/http"
	"github.com/tashu/studio/internal/application"
	"github.com/tashu/studio/internal/config"
	"github.com/tashu/studio/internal/domain/model"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on malformed env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"data_dir", cfg.DataDir,
		"uploads_dir", cfg.UploadsDir,
		"db_path", cfg.DBPath,
		"session_ttl", cfg.SessionTTL,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()

	// 3. Open the flat-file content store and bootstrap the admin credential.
	store, err := jsonfile.NewStore(cfg.DataDir, logger)
	if err != nil {
		return err
	}
	creds := jsonfile.NewCredentialRepo(store, logger)
	created, err := creds.EnsureDefault(ctx)
	if err != nil {
		return err
	}
	if created {
		slog.Warn("default admin credential created, change the password after first login")
	}

	// 4. Open the interaction mirror database and run migrations.
	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := db.RunMigrations(); err != nil {
		return err
	}
	slog.Info("interaction mirror ready", "path", cfg.DBPath)

	// 5. Wire adapters.
	assets, err := disk.NewAssetStore(cfg.UploadsDir, logger)
	if err != nil {
		return err
	}
	stores := httphandler.Stores{
		Portfolio: jsonfile.NewCollection[model.PortfolioItem](store, "portfolio"),
		Services:  jsonfile.NewCollection[model.ServiceItem](store, "services"),
		Skills:    jsonfile.NewCollection[model.SkillItem](store, "skills"),
		Stories:   jsonfile.NewCollection[model.StoryItem](store, "stories"),
		Messages:  jsonfile.NewCollection[model.Message](store, "messages"),
		About:     jsonfile.NewDocument[model.AboutDocument](store, "about"),
		Settings:  jsonfile.NewDocument[model.SettingsDocument](store, "settings"),
	}
	interactions := sqliteadapter.NewInteractionRepo(db)

	// 6. Wire application services.
	sessions := application.NewSessionStore(cfg.SessionTTL)
	auth := application.NewAuthService(creds, sessions, logger)
	restore := application.NewRestoreService(stores.About, stores.Settings, stores.Portfolio, stores.Services, stores.Skills, stores.Stories, logger)

	// 7. Register API routes, uploads, and the optional static site.
	handler := httphandler.NewHandler(auth, restore, stores, assets, interactions, cfg.SessionTTL, logger)
	mux := http.NewServeMux()
	httphandler.RegisterRoutes(mux, handler)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	if cfg.ServesSite() {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.SiteDir)))
		slog.Info("serving static site", "dir", cfg.SiteDir)
	}

	wrapped := httphandler.ApplyMiddleware(mux, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           wrapped,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("studio started", "listen_addr", cfg.ListenAddr)

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
