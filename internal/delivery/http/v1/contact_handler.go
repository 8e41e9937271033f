package v1

import (
	"errors"

	"electric-system-backend/internal/delivery/http/middleware"
	"electric-system-backend/internal/delivery/http/response"
	"electric-system-backend/internal/domain"
	"electric-system-backend/pkg/apperror"
	"electric-system-backend/pkg/metrics"
	"electric-system-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter middleware.Limiter, rateLimit middleware.RateLimitConfig) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", middleware.RateLimitMiddleware(limiter, rateLimit), handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission and dispatches the notification and confirmation emails. Public endpoint, rate limited per client IP.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Deployment preflight: without a provider credential there is nothing
	// to attempt, whatever the body contains.
	if !h.contactUC.Configured() {
		metrics.IncrementContactSubmission("not_configured")
		c.Error(apperror.Internal("Email service not configured", domain.ErrEmailNotConfigured))
		return
	}

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncrementContactSubmission("validation_failed")
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrNotificationSendFailed) {
			metrics.IncrementContactSubmission("send_failed")
			c.Error(apperror.Internal("Failed to send email", err))
			return
		}
		// Anything else is collapsed to the opaque 500 by the error middleware.
		metrics.IncrementContactSubmission("error")
		c.Error(err)
		return
	}

	metrics.IncrementContactSubmission("success")
	response.Success(c)
}
