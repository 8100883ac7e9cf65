package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yungbote/careerpath-backend/internal/app"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func main() {
	cfg, err := app.LoadConfig(app.LoadOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithOptions(logger.Options{
		Mode:   cfg.Logging.Mode,
		Level:  cfg.Logging.Level,
		Redact: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("Failed to init app", "error", err)
		os.Exit(1)
	}
	for _, res := range a.SeedReport.Failed() {
		log.Warn("Seed source skipped", "source", res.Source, "error", res.Err)
	}

	runErr := a.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Close(closeCtx); err != nil {
		log.Warn("Shutdown incomplete", "error", err)
	}
	if runErr != nil {
		log.Error("Server failed", "error", runErr)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
