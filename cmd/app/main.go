package main

import (
	"tourdesk/config"
	"tourdesk/di"
	"tourdesk/helper"
	"tourdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tourdesk API
// @version 1.0
// @description Back-office API for tours, bookings, providers and guide trips.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logFile := logger.AttachFileOutput(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.OnShutdown(func() {
		if err := logFile.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close log file")
		}
	})
	http.Serve()
}
