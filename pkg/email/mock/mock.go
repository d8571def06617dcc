package mock_email

import (
	"github.com/stretchr/testify/mock"

	"github.com/job-finder/backend/pkg/email"
)

type EmailSender struct {
	mock.Mock
}

func (m *EmailSender) Send(inp email.SendEmailInput) error {
	args := m.Called(inp)

	return args.Error(0)
}
