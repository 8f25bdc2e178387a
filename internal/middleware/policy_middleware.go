package middleware

import (
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Permitter is the role level half of the policy engine. Object level rules
// are checked by services once the target is loaded.
type Permitter interface {
	Permits(role policy.Role, action policy.Action) bool
}

func Authorize(p Permitter, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if !actor.Authenticated() {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		if !p.Permits(actor.Role, action) {
			response.AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
