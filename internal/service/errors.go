package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingContact          = errors.New("either email or phone must be provided")
	ErrUserAlreadyExists       = errors.New("user with this email or phone already exists")
	ErrInvalidCredentials      = errors.New("incorrect email/phone or password")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")
	ErrUserNotFound            = errors.New("user not found")
	ErrJobNotFound             = errors.New("job not found")
	ErrCompanyNameRequired     = errors.New("company name is required")
	ErrAlreadyApplied          = errors.New("you have already applied for this job")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidStatus           = errors.New("invalid status value")
	ErrEmployerOnly            = errors.New("only employers can perform this action")
	ErrEmployeeOnly            = errors.New("only employees can perform this action")
	ErrNotJobOwner             = errors.New("you don't have access to this application")
)

// NotVerifiedError rejects a login by an unverified account. It carries
// the user id (and the freshly issued code, surfaced only when the
// exposure flag is on) so the client can drive the verify flow.
type NotVerifiedError struct {
	UserID int64
	Code   string
}

func (e *NotVerifiedError) Error() string {
	return fmt.Sprintf("user %d is not verified", e.UserID)
}
