package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/client"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("todo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, buildInfo, log)

	if err = client.NewApp(services, ui, cfg.Workers, log).Run(); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
