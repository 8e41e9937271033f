package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The body shapes below are the public API contract consumed by the
// frontend; do not add fields without updating it.

// ErrorBody is the response for every non-2xx outcome. Details carries the
// per-field issue list on validation failures only.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessBody acknowledges an accepted submission.
type SuccessBody struct {
	Success bool `json:"success"`
}

// Success sends the 200 acknowledgement
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// Error sends an error response with an opaque message
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// ValidationError sends a 400 with the per-field issue list
func ValidationError(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}
