// Command catalog-import copies the CSV skill catalog into PostgreSQL so the
// server can run with CATALOG_SOURCE=postgres.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/skillgap/pkg/catalog"
	"github.com/artem13815/skillgap/pkg/config"
	"github.com/artem13815/skillgap/pkg/logger"
	pgrepo "github.com/artem13815/skillgap/pkg/repository/postgres"
	"github.com/artem13815/skillgap/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.DatabaseURL == "" {
		zlog.Fatal("DATABASE_URL не задан")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	src := catalog.CSVSource{CareersPath: cfg.CatalogCareersPath, CoursesPath: cfg.CatalogCoursesPath}
	careers, courses, err := src.Load(ctx)
	if err != nil {
		zlog.Fatal("read csv catalog", zap.Error(err))
	}
	// Reject files the server would refuse to start with.
	if _, err := catalog.New(careers, courses); err != nil {
		zlog.Fatal("validate csv catalog", zap.Error(err))
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()

	if _, err := pgrepo.NewCatalogRepository(pool); err != nil {
		zlog.Fatal("init catalog repo", zap.Error(err))
	}
	if err := pgrepo.Seed(ctx, pool, careers, courses); err != nil {
		zlog.Fatal("seed catalog", zap.Error(err))
	}
	zlog.Info("catalog imported", zap.Int("careers", len(careers)), zap.Int("courses", len(courses)))
}
