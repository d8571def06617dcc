package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	VerificationEmailTaskName  = "verificationEmailTask"
	VerificationEmailQueueName = "notificationQueue"
)

type VerificationEmail struct {
	UserID           int64  `json:"user_id"`
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}

func NewVerificationEmailTask(userID int64, email string, verificationCode string) (*asynq.Task, error) {
	data := VerificationEmail{
		UserID:           userID,
		Email:            email,
		VerificationCode: verificationCode,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		VerificationEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(VerificationEmailQueueName),
	), nil
}
