package main

import (
	"context"
	"time"

	"go-logbook/internal/app"
	"go-logbook/internal/bootstrap"
	"go-logbook/internal/config"
	"go-logbook/internal/middleware"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "logbook-api"

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	shutdownTracing, err := telemetry.InitTracing(context.Background(), serviceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Fatal("init tracing failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	// build dependency + routes
	closeApp, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer closeApp()

	bootstrap.StartHTTPServer(
		telemetry.WrapHandler(r, serviceName),
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
