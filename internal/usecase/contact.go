package usecase

import (
	"context"
	"fmt"
	"html/template"

	"electric-system-backend/internal/domain"
	"electric-system-backend/pkg/email"
	"electric-system-backend/pkg/logger"
	"electric-system-backend/pkg/metrics"
	"electric-system-backend/pkg/sanitize"
)

type contactUsecase struct {
	emailService *email.EmailService
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(emailService *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{
		emailService: emailService,
	}
}

// Configured reports whether the email provider credential is usable.
func (uc *contactUsecase) Configured() bool {
	return uc.emailService.IsConfigured()
}

// SendContactMessage sanitizes the validated submission and dispatches both
// emails, business notification first. The two sends are sequential blocking
// round trips; the confirmation is only attempted once the notification
// succeeded.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if !uc.emailService.IsConfigured() {
		return domain.ErrEmailNotConfigured
	}

	// Output encoding for the HTML templates. The submission itself is kept
	// as received; only the values flowing into email bodies are escaped.
	data := email.SubmissionData{
		Name:         template.HTML(sanitize.HTML(req.Name)),
		Email:        template.HTML(sanitize.HTML(req.Email)),
		Phone:        template.HTML(sanitize.HTML(req.Phone)),
		ServiceLabel: domain.ServiceLabel(req.Service),
		Message:      template.HTML(sanitize.Multiline(req.Message)),
	}

	if err := uc.emailService.SendNotification(ctx, data); err != nil {
		metrics.IncrementEmailSent("notification", "failed")
		return fmt.Errorf("%w: %v", domain.ErrNotificationSendFailed, err)
	}
	metrics.IncrementEmailSent("notification", "success")

	// Delivery to the raw validated address. A failure here surfaces as a
	// generic error even though the business was already notified; the
	// distinct log line keeps the partial state visible to operators.
	if err := uc.emailService.SendConfirmation(ctx, req.Email, data); err != nil {
		metrics.IncrementEmailSent("confirmation", "failed")
		logger.Log.Error("confirmation email failed after notification was sent",
			"recipient", req.Email, "error", err)
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	metrics.IncrementEmailSent("confirmation", "success")

	return nil
}
