package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-jmap-sync/internal/client"
	"github.com/MKhiriev/go-jmap-sync/internal/config"
	"github.com/MKhiriev/go-jmap-sync/internal/logger"
	"github.com/MKhiriev/go-jmap-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("jmap-sync-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg.Adapter.UserAgent = info.UserAgent()

	log.Debug().Str("api_url", cfg.Adapter.APIURL).Str("account", cfg.Account.ID).Msg("received configs")

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
