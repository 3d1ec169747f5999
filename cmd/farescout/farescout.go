package main

import (
	"os"
	"time"

	"github.com/farescout/farescout/pkg/api"
	"github.com/farescout/farescout/pkg/archiver"
	"github.com/farescout/farescout/pkg/consumer"
	"github.com/farescout/farescout/pkg/dataimporter"
	"github.com/farescout/farescout/pkg/events"
	"github.com/farescout/farescout/pkg/stats"
	"github.com/farescout/farescout/pkg/transforms"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("FARESCOUT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("FARESCOUT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	transforms.SetupClient()

	app := &cli.App{
		Name:        "farescout",
		Description: "Single binary of truth for Farescout - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			archiver.RegisterCLI(),
			consumer.RegisterCLI(),
			dataimporter.RegisterCLI(),
			events.RegisterCLI(),
			stats.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
