package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/cache"
	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/handler"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/server"
	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-taxii-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		logger.NewLogger("go-taxii-server", "").Fatal().Err(err).Msg("invalid server configs")
	}

	log := logger.NewLogger("go-taxii-server", cfg.Log.Level)
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Int("ingest_workers", cfg.Ingest.Workers).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var (
		notifier   cache.Notifier = cache.NopNotifier{}
		background []workers.Worker
	)
	repositories := store.NewRepositories(db, log)

	var invalidator *cache.Invalidator
	if cfg.Storage.Redis.Address != "" {
		invalidator = cache.NewInvalidator(cfg.Storage.Redis, log)
		defer invalidator.Close()
		notifier = invalidator
	}

	services, err := service.NewServices(repositories, notifier, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	background = append(background, workers.NewJobCleanupWorker(services.IngestService, cfg.Workers, log))
	if invalidator != nil {
		background = append(background, workers.NewCacheInvalidationWorker(invalidator, services.DirectoryCache.Purge, log))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(background...), services.IngestService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
