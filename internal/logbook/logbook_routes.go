package logbook

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
	logbooks := r.Group("/logbooks")
	logbooks.Use(middleware.AuthMiddleware(auth))
	logbooks.Use(middleware.ContextLogger(logger))

	schemas := logbooks.Group("/schemas")
	{
		view := []gin.HandlerFunc{middleware.RateLimitByUser(5, 20), middleware.Authorize(engine, policy.ActionEntryView)}
		manage := []gin.HandlerFunc{middleware.RateLimitByUser(1, 5), middleware.Authorize(engine, policy.ActionSchemaManage)}

		schemas.GET("", append(view, handler.ListSchemas)...)
		schemas.GET("/:id", append(view, handler.GetSchema)...)
		schemas.POST("", append(manage, handler.CreateSchema)...)
		schemas.PUT("/:id", append(manage, handler.UpdateSchema)...)
		schemas.PATCH("/:id", append(manage, handler.UpdateSchema)...)
		schemas.DELETE("/:id", append(manage, handler.DeleteSchema)...)
		schemas.GET("/:id/assign_roles", append(manage, handler.ListAssignments)...)
		schemas.POST("/:id/assign_roles", append(manage, handler.AssignRoles)...)
	}

	entries := logbooks.Group("/entries")
	{
		entries.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionEntryView),
			handler.ListEntries,
		)

		entries.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(engine, policy.ActionEntryView),
			handler.GetEntry,
		)

		entries.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.CreateEntry,
		)

		entries.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.UpdateEntry,
		)

		entries.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.UpdateEntry,
		)

		entries.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Authorize(engine, policy.ActionEntryDelete),
			handler.DeleteEntry,
		)

		entries.POST("/:id/submit",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryLog),
			handler.SubmitEntry,
		)

		entries.POST("/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(engine, policy.ActionEntryApprove),
			handler.ApproveEntry,
		)
	}
}
