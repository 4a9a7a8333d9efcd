package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/addrway/internal/adapter"
	"github.com/MKhiriev/addrway/internal/config"
	"github.com/MKhiriev/addrway/internal/handler"
	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/metrics"
	"github.com/MKhiriev/addrway/internal/server"
	"github.com/MKhiriev/addrway/internal/service"
	"github.com/MKhiriev/addrway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(config.DefaultServiceName).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger(cfg.App.Name)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("geocoder", cfg.Geocoder.BaseURL).
		Bool("api_key_required", cfg.Server.APIKey != "").
		Msg("received configs")

	m := metrics.NewMetrics(metrics.DefaultNamespace)

	provider, err := adapter.NewNominatimProvider(cfg.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoding provider")
	}
	provider = adapter.WithObserver(provider, m)

	services, err := service.NewServices(provider, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
