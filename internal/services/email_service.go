package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/arrenda/arrenda-api/internal/logger"
)

// EmailService sends tenant correspondence through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service
func NewEmailService(apiKey string, fromEmail string, fromName string) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger.Log,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendNotice sends one rendered notice to a tenant. Content is plain text;
// the template layer owns all substitution.
func (s *EmailService) SendNotice(ctx context.Context, toEmail, subject, content string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: subject,
		Text:    content,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "tenant_notice"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send notice email",
			zap.Error(err),
			zap.String("to", toEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Notice email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", toEmail))

	return nil
}
