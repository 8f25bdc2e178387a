package app

import (
	"context"
	"net/http"
	"time"

	"go-logbook/internal/config"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/connection"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// infra holds the connections a process opens once at startup.
type infra struct {
	db  *gorm.DB
	rdb *redis.Client
}

func connect(cfg config.Config) (*infra, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		cfg.DB.MaxRetries,
	)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.DB.MaxRetries)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := Migrate(db); err != nil {
			closeDB(db)
			_ = rdb.Close()
			return nil, err
		}
	}

	return &infra{db: db, rdb: rdb}, nil
}

func (i *infra) close() {
	closeDB(i.db)
	_ = i.rdb.Close()
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// BuildApp connects infrastructure and mounts every route on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	in, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	// 2. Register Modules & Routes
	m, err := newModules(cfg, in.db, in.rdb, logger)
	if err != nil {
		in.close()
		return nil, err
	}
	registerModules(router, m, in.rdb)

	router.GET("/healthz", healthHandler(in))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return in.close, nil
}

func healthHandler(in *infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "ok"}
		healthy := true

		if sqlDB, err := in.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["database"] = "unreachable"
			healthy = false
		}
		if err := in.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unreachable"
			healthy = false
		}

		if !healthy {
			e := apperror.ErrServiceUnavailable
			response.Error(c, http.StatusServiceUnavailable, e.Code, e.Message, checks)
			return
		}
		response.Success(c, http.StatusOK, checks, nil)
	}
}
