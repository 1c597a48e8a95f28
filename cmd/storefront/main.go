package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/petra-home/storefront/internal/di"
	"github.com/petra-home/storefront/internal/platform/config"
	"github.com/petra-home/storefront/internal/platform/observability"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("storefront")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	container, err := di.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.Close(closeCtx); err != nil {
			logger.Warn("container close error", zap.Error(err))
		}
	}()

	if err := container.Services.Catalog.Init(ctx); err != nil {
		logger.Fatal("failed to initialise catalog", zap.Error(err))
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	if cfg.Catalog.LiveUpdates && !container.Services.Catalog.Disconnected() {
		watchLogger := logger.Named("catalog")
		go func() {
			if err := container.Services.Catalog.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				watchLogger.Error("catalog stream ended", zap.Error(err))
			}
		}()
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("storefront running",
		zap.Bool("liveUpdates", cfg.Catalog.LiveUpdates),
		zap.Bool("disconnected", container.Services.Catalog.Disconnected()),
		zap.String("defaultLanguage", cfg.Catalog.DefaultLanguage))

	<-shutdown
	logger.Info("shutdown signal received")
	cancelWatch()
}
