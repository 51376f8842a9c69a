package main

import (
	"context"
	"fmt"
	"os"

	"trading-assistant/internal/assistant"
	"trading-assistant/internal/assistant/assistantobs"
	"trading-assistant/internal/interfaces"
	"trading-assistant/internal/logger"
	"trading-assistant/internal/store"
	"trading-assistant/internal/trace"
	"trading-assistant/internal/tradestore"
	"trading-assistant/internal/tradestore/storeobs"

	"github.com/joho/godotenv"
)

// App holds the wired components the commands work with.
type App struct {
	Config    *store.Config
	Store     interfaces.DayStore
	Assistant interfaces.Assistant
}

// initializeSystem loads env and config, initializes logger and tracer, and
// wires the store and assistant with observability middleware.
func initializeSystem(configPath, dataDir string) (*App, error) {
	_ = godotenv.Load()

	cfg, err := store.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logCfg := logger.LoadConfigFromEnv()
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	if cfg.Log.Detailed {
		logCfg.DetailedLogging = true
	}
	if err := logger.InitWithConfig(logCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	dayStore := storeobs.Wrap(tradestore.New(cfg.DataDir, cfg.FilePrefix))
	asst := assistantobs.Wrap(assistant.New(dayStore, cfg.Response.TopStocks))

	return &App{
		Config:    cfg,
		Store:     dayStore,
		Assistant: asst,
	}, nil
}

// Shutdown flushes the tracer provider.
func (a *App) Shutdown(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "Tracer shutdown failed", "error", err)
	}
}
