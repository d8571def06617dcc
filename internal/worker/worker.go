package worker

import (
	"context"

	"github.com/job-finder/backend/internal/config"
	emailProvider "github.com/job-finder/backend/pkg/email"
)

type Workers struct {
	NotificationSender NotificationSender
}

type Deps struct {
	EmailSender emailProvider.Sender
	Config      *config.Config
}

type NotificationSender interface {
	SendVerificationCode(ctx context.Context, email string, verificationCode string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		NotificationSender: newNotificationSender(deps.EmailSender, deps.Config.Email),
	}
}
