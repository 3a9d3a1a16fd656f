package middleware

import (
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the listed roles. It runs after
// FirebaseAuthMiddleware and assumes the actor is already set.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			utils.JSONError(c, utils.E(utils.KindUnauthenticated, "no authenticated account"))
			c.Abort()
			return
		}
		if !allowed[actor.Role] {
			utils.JSONError(c, utils.E(utils.KindPermissionDenied, "role not allowed on this route"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager gates a route group to managers.
func RequireManager() gin.HandlerFunc {
	return RequireRoles(models.RoleManager)
}
