package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lawfirm-cms/internal/shared"
)

// RequestID reuses an incoming X-Request-ID or assigns a new UUID, and echoes
// it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(shared.HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(shared.ContextKeyRequestID, id)
		c.Header(shared.HeaderRequestID, id)

		c.Next()
	}
}
