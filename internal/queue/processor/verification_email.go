package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/job-finder/backend/internal/queue/task"
	"github.com/job-finder/backend/internal/worker"
)

type verificationEmailProcessor struct {
	workers *worker.Workers
}

func NewVerificationEmailProcessor(workers *worker.Workers) *verificationEmailProcessor {
	return &verificationEmailProcessor{
		workers: workers,
	}
}

func (p *verificationEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.VerificationEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process verification email task json unmarshal failed: %w", err)
	}

	if err := p.workers.NotificationSender.SendVerificationCode(ctx, data.Email, data.VerificationCode); err != nil {
		return fmt.Errorf("send verification code failed: %w", err)
	}

	return nil
}
