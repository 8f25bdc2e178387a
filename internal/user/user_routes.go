package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(auth))
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionUserManage),
			handler.List,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			handler.GetByID,
		)

		users.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Authorize(engine, policy.ActionUserCreate),
			handler.Create,
		)

		users.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Authorize(engine, policy.ActionUserManage),
			handler.Update,
		)

		users.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Authorize(engine, policy.ActionUserManage),
			handler.Update,
		)

		users.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Authorize(engine, policy.ActionUserDelete),
			handler.Delete,
		)

		users.POST("/:id/restore",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Authorize(engine, policy.ActionUserRestore),
			handler.Restore,
		)
	}
}
