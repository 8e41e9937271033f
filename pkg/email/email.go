// Package email sends the contact form emails through Postmark.
package email

import (
	"context"
	"fmt"
	"html/template"

	"electric-system-backend/config"

	"github.com/mrz1836/postmark"
)

const (
	notificationFrom = "ELECTRIC SYSTEM Website <noreply@electric-system.lu>"
	confirmationFrom = "ELECTRIC SYSTEM <noreply@electric-system.lu>"

	defaultContactEmail = "info@electric-system.lu"

	// Postmark's sandbox token. Treated the same as an empty credential so a
	// half-configured deployment fails loudly instead of sending nowhere.
	placeholderToken = "POSTMARK_API_TEST"
)

// Message carries one outbound email, handed to the provider as-is.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Sender is the delivery capability: one blocking round trip to the
// transactional email provider per call.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type postmarkSender struct {
	client *postmark.Client
}

func (s *postmarkSender) Send(ctx context.Context, msg Message) error {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         msg.To,
		Subject:    msg.Subject,
		HTMLBody:   msg.HTMLBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return fmt.Errorf("postmark send failed: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}

// SubmissionData holds the fields interpolated into the email templates.
// Free-text values must already be sanitized; template.HTML marks them as
// safe so html/template does not escape them a second time.
type SubmissionData struct {
	Name         template.HTML
	Email        template.HTML
	Phone        template.HTML
	ServiceLabel string
	Message      template.HTML
}

// EmailService composes and dispatches the contact form emails
type EmailService struct {
	sender       Sender
	contactEmail string
	configured   bool
}

// NewEmailService creates an email service backed by Postmark
func NewEmailService(cfg *config.Config) *EmailService {
	configured := cfg.PostmarkServerToken != "" && cfg.PostmarkServerToken != placeholderToken

	var sender Sender
	if configured {
		sender = &postmarkSender{
			client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		}
	}

	contactEmail := cfg.ContactEmailTo
	if contactEmail == "" {
		contactEmail = defaultContactEmail
	}

	return &EmailService{
		sender:       sender,
		contactEmail: contactEmail,
		configured:   configured,
	}
}

// NewEmailServiceWithSender wires an explicit sender. Used by tests and by
// deployments that swap the provider.
func NewEmailServiceWithSender(sender Sender, contactEmail string) *EmailService {
	if contactEmail == "" {
		contactEmail = defaultContactEmail
	}
	return &EmailService{
		sender:       sender,
		contactEmail: contactEmail,
		configured:   sender != nil,
	}
}

// IsConfigured checks if a usable provider credential is present
func (s *EmailService) IsConfigured() bool {
	return s.configured
}

// SendNotification sends the new-lead email to the business address.
func (s *EmailService) SendNotification(ctx context.Context, data SubmissionData) error {
	body, err := RenderNotification(data)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, Message{
		From:     notificationFrom,
		To:       s.contactEmail,
		Subject:  fmt.Sprintf("Nouvelle demande de contact - %s", data.ServiceLabel),
		HTMLBody: body,
	})
}

// SendConfirmation sends the receipt email to the submitter. The recipient is
// the raw validated address, not the sanitized one.
func (s *EmailService) SendConfirmation(ctx context.Context, recipient string, data SubmissionData) error {
	body, err := RenderConfirmation(data)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, Message{
		From:     confirmationFrom,
		To:       recipient,
		Subject:  "Confirmation de votre demande - ELECTRIC SYSTEM",
		HTMLBody: body,
	})
}
