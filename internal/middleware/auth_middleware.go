package middleware

import (
	"context"
	"strings"

	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

// Authenticator resolves an access token to a live actor. Implementations
// must reject tokens whose session has been revoked.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*policy.Actor, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(contextutil.GinActorKey, actor)
		c.Set(contextutil.GinUserIDKey, actor.ID.String())
		c.Set(contextutil.GinRoleKey, string(actor.Role))

		ctx := contextutil.WithUserID(c.Request.Context(), actor.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActorFrom returns the actor set by AuthMiddleware, or nil.
func ActorFrom(c *gin.Context) *policy.Actor {
	v, ok := c.Get(contextutil.GinActorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*policy.Actor)
	return actor
}
