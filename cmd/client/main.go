package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pos-client/internal/adapter"
	"github.com/MKhiriev/go-pos-client/internal/client"
	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/service"
	"github.com/MKhiriev/go-pos-client/internal/store"
	"github.com/MKhiriev/go-pos-client/internal/tui"
	"github.com/MKhiriev/go-pos-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so logs go to a file
	log, logFile := logger.NewClientLogger("go-pos-client", cfg.App.LogDir)
	defer logFile.Close()

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	graphQLClient, err := adapter.NewGraphQLClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create graphql client: %w", err)
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services, err := service.NewClientServices(
		adapter.NewServerAdapters(graphQLClient, log),
		storages,
		cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	if err = app.Run(); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
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
