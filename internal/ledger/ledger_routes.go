package ledger

import (
	"go-logbook/internal/middleware"
	"go-logbook/internal/policy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth middleware.Authenticator,
	engine middleware.Permitter,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(auth))
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.Authorize(engine, policy.ActionReportView))
	{
		reports.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		reports.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
	}
}
