package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-eka-mr/internal/app"
	"github.com/MKhiriev/go-eka-mr/internal/client"
	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
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
	log := logger.NewCLILogger("ekamr")
	// build info goes to the log file, not stdout: stdout carries results
	log.Info().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("ekamr started")

	cfg, err := config.GetClientConfig()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Fprintln(os.Stderr, "Error:", app.MsgMissingCredentials)
			return client.ExitError
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return client.ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return client.NewApp(cfg, log).Run(ctx)
}
