package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/adapter"
	"github.com/MKhiriev/go-intern-verify/internal/client"
	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/tui"
	"github.com/MKhiriev/go-intern-verify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const versionCheckTimeout = 2 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("verify-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Mode == config.ModeRemote {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
		checkServerVersion(serverAdapter, log)
	}

	verifier, err := service.NewClientVerificationService(cfg, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create verification service")
	}

	buildInfo := models.NewAppBuildInfo("verify-client", buildVersion, buildDate, buildCommit)
	ui, err := tui.New(verifier, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// checkServerVersion logs the verify API version. An unreachable server is
// only a warning: every verification then shows a network error.
func checkServerVersion(serverAdapter adapter.ServerAdapter, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), versionCheckTimeout)
	defer cancel()

	version, err := serverAdapter.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("verify API version check failed")
		return
	}
	log.Info().Str("server_version", version).Msg("connected to verify API")
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
