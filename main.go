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

	"github.com/joho/godotenv"

	"github.com/you/pathfinder/catalog"
	"github.com/you/pathfinder/config"
	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/handlers"
	"github.com/you/pathfinder/logging"
	"github.com/you/pathfinder/pathclient"
	"github.com/you/pathfinder/repository"
	"github.com/you/pathfinder/session"
	"github.com/you/pathfinder/web"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	cat, closeCatalog, err := loadCatalog(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("failed to load city catalog", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}
	defer closeCatalog()
	logger.Info("city catalog loaded", "source", cfg.CatalogSource, "cities", cat.Len())

	client := pathclient.New(cfg.PathServiceURL, pathclient.WithTimeout(cfg.PathServiceTimeout))
	hint := "Try selecting different cities or check that the path service is running at " + client.Endpoint()

	sessions := session.NewStore(cfg.SessionTTL, func() *finder.Orchestrator {
		return finder.New(client,
			finder.WithLogger(logger),
			finder.WithStaleResponses(cfg.KeepStaleResponses),
			finder.WithHint(hint),
		)
	})

	tmpl, err := web.Templates()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	h := handlers.New(cat, sessions, tmpl, logger)
	router := handlers.NewRouter(h, handlers.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Static:         web.Static(),
		StaticDir:      cfg.StaticDir,
		Health: handlers.HealthInfo{
			CatalogSource: cfg.CatalogSource,
			PathService:   client.Endpoint(),
		},
	})

	// No WriteTimeout: POST /find waits for the path service, which is unbounded by default.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"path_service", client.Endpoint(),
			"path_service_timeout", cfg.PathServiceTimeout,
			"session_ttl", cfg.SessionTTL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shut down", "error", err)
	}
	logger.Info("server stopped")
}

// loadCatalog builds the city catalog from the configured source. The
// returned func releases any database handle.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case config.CatalogSQLite:
		logger.Info("connecting to SQLite database", "path", cfg.SQLiteDatabase)
		db, err := repository.NewSQLiteDB(cfg.SQLiteDatabase)
		if err != nil {
			return nil, noop, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		cat, err := catalog.Load(ctx, repository.NewSQLiteCityRepository(db.GetDB()))
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return cat, func() { db.Close() }, nil

	case config.CatalogPostgres:
		logger.Info("connecting to PostgreSQL")
		repo, err := repository.NewPostgresCityRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			repo.Close()
			return nil, noop, err
		}
		cat, err := catalog.Load(ctx, repo)
		if err != nil {
			repo.Close()
			return nil, noop, err
		}
		return cat, repo.Close, nil
	}

	return catalog.Default(), noop, nil
}
