package domain

import (
	"context"
	"errors"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=8,max=20"`
	Service string `json:"service" binding:"required,oneof=photovoltaique borne-recharge electricite-generale domotique securite informatique autre"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// FieldError identifies a single validation issue so the frontend can
// highlight the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// serviceLabels maps submitted service values to the labels shown in email
// subjects and bodies. Keys mirror the frontend's select options.
var serviceLabels = map[string]string{
	"photovoltaique":       "Installation Photovoltaïque",
	"borne-recharge":       "Bornes de Recharge VE",
	"electricite-generale": "Électricité Générale",
	"domotique":            "Domotique",
	"securite":             "Sécurité",
	"informatique":         "Infrastructure Informatique",
	"autre":                "Autre",
}

// ServiceLabel returns the human-readable label for a service value.
// Validation guarantees membership; the raw value is returned as a fallback.
func ServiceLabel(service string) string {
	if label, ok := serviceLabels[service]; ok {
		return label
	}
	return service
}

// ErrEmailNotConfigured reports a missing or placeholder email provider
// credential. This is a deployment failure, not a user error.
var ErrEmailNotConfigured = errors.New("email service is not configured")

// ErrNotificationSendFailed reports that the provider rejected the business
// notification email. The customer confirmation is not attempted after it.
var ErrNotificationSendFailed = errors.New("failed to send notification email")

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Configured reports whether the email delivery capability is available.
	// Checked before the request body is even parsed.
	Configured() bool
	// SendContactMessage sanitizes the validated submission and dispatches
	// the business notification and the customer confirmation emails.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
