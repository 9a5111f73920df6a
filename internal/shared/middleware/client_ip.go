package middleware

import (
	"github.com/gin-gonic/gin"

	"lawfirm-cms/internal/shared"
	"lawfirm-cms/internal/shared/utils"
)

// ClientIPMiddleware stores the client address under shared.ContextKeyClientIP
// for the logger and the rate limiter.
//
// Usage:
//
//	router.Use(middleware.ClientIPMiddleware())
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(shared.ContextKeyClientIP, utils.ExtractClientIP(c.Request))
		c.Next()
	}
}

// clientIP returns the stored address, extracting it if the middleware did not run.
func clientIP(c *gin.Context) string {
	if ip := c.GetString(shared.ContextKeyClientIP); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c.Request)
}
