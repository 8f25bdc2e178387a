package passwordreset

import (
	"go-logbook/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, perMinute int, logger *zap.Logger) {
	limit := middleware.RateLimitByIP(middleware.PerMinute(perMinute), perMinute)

	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/forgot-password", limit, handler.ForgotPassword)
		auth.POST("/validate-reset-token", limit, handler.ValidateToken)
		auth.POST("/reset-password", limit, handler.ResetPassword)
	}
}
