package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService sends the confirmation email for a received application.
// Without an API key the service is disabled, which is not an error: the
// school may run without outbound mail. In development mode emails are
// logged instead of sent.
type EmailService struct {
	client     *resend.Client
	fromEmail  string
	schoolName string
	isDev      bool
}

func NewEmailService(apiKey, fromEmail, schoolName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		schoolName: schoolName,
		isDev:      isDev,
	}
}

// Enabled reports whether confirmation emails are configured at all.
func (s *EmailService) Enabled() bool {
	return s.client != nil || s.isDev
}

// SendApplicationReceived sends a single confirmation to the applicant.
// One attempt, no retries; the submission is already durably stored by
// the time this runs.
func (s *EmailService) SendApplicationReceived(email, name string) error {
	subject := fmt.Sprintf("%s — Application Received", s.schoolName)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for submitting your application to %s. We will review it shortly and contact you soon.</p><p>Best regards,<br>Admissions Team</p>",
		name, s.schoolName,
	)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "application_received", "to", email, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "application_received", "to", email)
	}
	return err
}
