package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or version")
		dir     = flag.String("dir", "migrations", "Directory with one sub-directory per dialect")
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

	var m *migrate.Migrate
	if cfg.DB.IsMemory() {
		// An in-memory database only lives as long as this connection.
		db, err := database.Connect(context.Background(), cfg.DB)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			logger.Fatal("Failed to create sqlite driver", zap.Error(err))
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+*dir+"/sqlite", "sqlite3", driver)
		if err != nil {
			logger.Fatal("Failed to create migration instance", zap.Error(err))
		}
	} else {
		m, err = migrate.New("file://"+*dir+"/postgres", cfg.DB.DSN())
		if err != nil {
			logger.Fatal("Failed to create migration instance", zap.Error(err))
		}
		defer m.Close()
	}

	switch *command {
	case "up":
		logger.Info("Running migrations UP")
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Fatal("Migration up failed", zap.Error(err))
		}
	case "down":
		logger.Info("Running migrations DOWN")
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Fatal("Migration down failed", zap.Error(err))
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			logger.Fatal("Failed to get version", zap.Error(err))
		}
		logger.Info("Migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
	default:
		logger.Fatal("Unknown command", zap.String("command", *command))
	}

	logger.Info("Migration command completed successfully")
}
