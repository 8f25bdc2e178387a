package auth

import (
	"go-logbook/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticator middleware.Authenticator, loginPerMinute int, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/login", middleware.RateLimitByIP(middleware.PerMinute(loginPerMinute), 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(middleware.PerMinute(loginPerMinute*3), 10), handler.Refresh)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(authenticator), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
