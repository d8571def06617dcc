package worker

import (
	"context"
	"fmt"

	"github.com/job-finder/backend/internal/config"
	emailProvider "github.com/job-finder/backend/pkg/email"
)

type notificationSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newNotificationSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *notificationSender {
	return &notificationSender{
		sender: sender,
		config: config,
	}
}

type verificationEmailInput struct {
	VerificationCode string
}

func (s *notificationSender) SendVerificationCode(ctx context.Context, email string, verificationCode string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Your verification code"

	templateInput := verificationEmailInput{verificationCode}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
