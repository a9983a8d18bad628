package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/console"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/httpserver"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/observability"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/app"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/shared"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/storage/flatfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	store, err := flatfile.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("record store open failed")
	}

	engine := app.NewEngine(store)
	if err := engine.Load(); err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}

	if cfg.ReportsAddr != "" {
		srv := httpserver.New()
		reg := observability.InitRegistry()
		srv.Mount("/metrics", observability.MetricsHandler(reg))
		srv.MountHandlers(&httpserver.Handlers{E: engine})
		srv.Serve(cfg.ReportsAddr)
	}

	console.New(engine, os.Stdin, os.Stdout).Run()

	// explicit save checkpoint on exit
	if err := engine.Save(); err != nil {
		log.Fatal().Err(err).Msg("save failed")
	}
}
