package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/server"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("todo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the linker-provided version wins only when none is configured
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
