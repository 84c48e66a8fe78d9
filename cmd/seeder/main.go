package main

import (
	"context"
	"flag"
	"log"

	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	var (
		path  = flag.String("fixtures", "", "Fixture file (defaults to SEED_FIXTURES)")
		force = flag.Bool("force", false, "Load fixtures even if the database has content")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if *path == "" {
		*path = cfg.Seeder.FixturesPath
	}
	if *path == "" {
		*path = "fixtures/munich.yaml"
	}

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

	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Fatal("Failed to check database", zap.Error(err))
	}
	if !isEmpty && !*force {
		logger.Info("Database already has content, use -force to load anyway")
		return
	}

	logger.Info("Parsing fixtures...", zap.String("path", *path))
	fixtures, err := seeder.NewParser(cfg.I18n.SupportedLanguages).ParseFile(*path)
	if err != nil {
		logger.Fatal("Failed to parse fixtures", zap.Error(err))
	}

	repos := repository.NewRepositories(db, repository.Options{
		Languages:           cfg.I18n.SupportedLanguages,
		MissingTranslations: cfg.I18n.MissingTranslations,
	})

	summary, err := seeder.NewLoader(repos, cfg.I18n.DefaultLanguage, logger).Load(ctx, fixtures)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}

	logger.Info("Data import completed successfully!", zap.Any("summary", summary))
}
