package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/itemkeeper/internal/cli"
	"github.com/dmitrijs2005/itemkeeper/internal/config"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/services"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	m, err := repomanager.Open(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	session, err := services.Bootstrap(ctx, m, logger)
	if err != nil {
		logger.Error(ctx, "failed to load data", "error", err)
		_ = m.Close()
		os.Exit(1)
	}

	app := cli.NewApp(session, logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
