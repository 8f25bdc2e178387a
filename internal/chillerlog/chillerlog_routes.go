package chillerlog

import (
	"time"

	"go-logbook/internal/middleware"
	"go-logbook/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth middleware.Authenticator,
	engine middleware.Permitter,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	idempotent := middleware.Idempotency(rdb, 24*time.Hour, logger)

	logs := r.Group("/chiller-logs")
	logs.Use(middleware.AuthMiddleware(auth))
	logs.Use(middleware.ContextLogger(logger))
	{
		logs.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionEntryView),
			handler.List,
		)

		logs.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionEntryView),
			handler.GetByID,
		)

		logs.GET("/:id/status-changes",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionEntryView),
			handler.StatusChanges,
		)

		logs.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			idempotent,
			handler.Create,
		)

		logs.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.Update,
		)

		logs.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.Update,
		)

		logs.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Authorize(engine, policy.ActionEntryDelete),
			handler.Delete,
		)

		logs.POST("/:id/submit",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.Submit,
		)

		logs.POST("/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryApprove),
			idempotent,
			handler.Approve,
		)
	}
}
