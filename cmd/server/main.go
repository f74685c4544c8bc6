package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"f1-data-service/internal/config"
	"f1-data-service/internal/countries"
	"f1-data-service/internal/logging"
	"f1-data-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "f1-data-service",
		Version: appVersion,
	})
	countries.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
