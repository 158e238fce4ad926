package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/handler"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/server"
	"github.com/MKhiriev/go-derma-records/internal/service"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/workers"
	"github.com/MKhiriev/go-derma-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("derma-records-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing storages")
	}

	m := metrics.New()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers(services, cfg.Retention, log)

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
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
