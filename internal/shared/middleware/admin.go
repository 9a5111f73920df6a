package middleware

import (
	"github.com/gin-gonic/gin"

	"lawfirm-cms/internal/shared"
	"lawfirm-cms/internal/shared/response"
	"lawfirm-cms/pkg/jwt"
)

// AdminMiddleware checks if user has admin role
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Set by AuthMiddleware
		role := c.GetString(shared.ContextKeyRole)
		if role != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
