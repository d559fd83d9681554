package main

import (
	"fmt"

	"github.com/MKhiriev/go-eka-mr/internal/config"
	handlerhttp "github.com/MKhiriev/go-eka-mr/internal/handler/http"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/server"
	"github.com/MKhiriev/go-eka-mr/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eka-mock")
	cfg, err := config.GetMockConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	docs := store.NewDocumentStore()
	handler := handlerhttp.NewHandler(cfg, docs, log)

	srv := server.NewServer(handler.Init(), cfg, log)
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
