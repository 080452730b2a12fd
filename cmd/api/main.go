package main

import (
	"context"
	"flag"
	"os"

	"github.com/tolga/acadapi/internal/bootstrap"
	"github.com/tolga/acadapi/internal/pkg/logger"
	"github.com/tolga/acadapi/internal/server"
)

func main() {
	configPath := flag.String("config", "./configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(database, cfg)
	router := bootstrap.SetupRouter(cfg, deps)

	srv := server.New(cfg, router)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
