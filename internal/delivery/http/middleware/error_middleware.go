package middleware

import (
	"errors"
	"net/http"

	"electric-system-backend/internal/delivery/http/response"
	"electric-system-backend/pkg/apperror"
	"electric-system-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors appended to the gin context and renders them.
// Client errors (4xx) pass through with their message and optional details;
// everything else is logged server-side and collapsed to an opaque 500 so no
// internal detail leaks to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"request_id", c.GetString(ContextKeyRequestID),
					"message", appErr.Message,
					"error", appErr.Err,
				)
			}
			if appErr.Details != nil {
				response.ValidationError(c, appErr.Message, appErr.Details)
				return
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error",
			"path", c.FullPath(),
			"request_id", c.GetString(ContextKeyRequestID),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
