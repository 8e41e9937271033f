package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the gin context key for the per-request ID.
const ContextKeyRequestID = "RequestID"

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an ID, honoring one supplied by the proxy,
// and echoes it back in the response headers for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
