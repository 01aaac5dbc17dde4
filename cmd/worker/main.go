package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"tourdesk/config"
	"tourdesk/di"
	"tourdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logFile := logger.AttachFileOutput(cfg)
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	worker.Run(ctx)

	log.Info().Msg("Booking event worker stopped.")
}
