package main

import (
	"context"

	"go-logbook/internal/app"
	"go-logbook/internal/config"
	"go-logbook/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
