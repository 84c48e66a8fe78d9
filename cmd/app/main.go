package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexivanou/cityportal-api/internal/api"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/logger"
	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/seeder"
	"github.com/alexivanou/cityportal-api/internal/service"
	"github.com/alexivanou/cityportal-api/internal/stats"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := database.Migrate(db, cfg.DB, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db, repository.Options{
		Languages:           cfg.I18n.SupportedLanguages,
		MissingTranslations: cfg.I18n.MissingTranslations,
	})

	if cfg.Seeder.FixturesPath != "" {
		if err := autoSeedDatabase(ctx, db, repos, cfg, logger); err != nil {
			logger.Fatal("Failed to auto-seed database", zap.Error(err))
		}
	}

	collector := metrics.NewCollector("cityportal")

	provider, err := cache.NewProvider(ctx, cfg.Cache, logger.Named("cache"))
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}
	breaker := cache.DefaultBreakerSettings()
	breaker.Timeout = cfg.Cache.BreakerTimeout
	aside := cache.NewAside(provider, logger.Named("cache"), collector, breaker)
	defer aside.Close()
	logger.Info("Cache ready", zap.String("type", string(cfg.Cache.Type)))

	languages := i18n.NewResolver(cfg.I18n.SupportedLanguages, cfg.I18n.DefaultLanguage)

	svc := service.NewService(service.Deps{
		Repos:     repos,
		Cache:     aside,
		Languages: languages,
		Metrics:   collector,
		Logger:    logger,
	})

	router := api.NewRouter(api.RouterDeps{
		Handler:   api.NewHandler(svc, logger.Named("api")),
		Stats:     stats.NewCollector(db, cfg.DB),
		Languages: languages,
		Tokens:    auth.NewTokenParser(cfg.Auth.JWTSecret),
		Metrics:   collector,
		Logger:    logger.Named("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// autoSeedDatabase loads the configured fixtures into an empty database.
func autoSeedDatabase(ctx context.Context, db *sqlx.DB, repos *repository.Container, cfg *config.Config, logger *zap.Logger) error {
	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to check database: %w", err)
	}
	if !isEmpty {
		logger.Info("Database already has content, skipping fixtures")
		return nil
	}

	logger.Info("Database is empty, seeding fixtures...", zap.String("path", cfg.Seeder.FixturesPath))
	fixtures, err := seeder.NewParser(cfg.I18n.SupportedLanguages).ParseFile(cfg.Seeder.FixturesPath)
	if err != nil {
		return err
	}

	loader := seeder.NewLoader(repos, cfg.I18n.DefaultLanguage, logger.Named("seeder"))
	if _, err := loader.Load(ctx, fixtures); err != nil {
		return err
	}
	logger.Info("Database seeded successfully", zap.Int("items", fixtures.Count()))
	return nil
}
