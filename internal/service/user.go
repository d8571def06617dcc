package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/queue/client"
	"github.com/job-finder/backend/internal/queue/task"
	"github.com/job-finder/backend/internal/repository"
	"github.com/job-finder/backend/pkg/auth"
	"github.com/job-finder/backend/pkg/hash"
	"github.com/job-finder/backend/pkg/logger"
	"github.com/job-finder/backend/pkg/otp"
)

type userService struct {
	userRepository         repository.Users
	verificationRepository repository.Verifications
	hasher                 hash.PasswordHasher
	tokenManager           auth.TokenManager
	otpGenerator           otp.Generator
	authConfig             config.AuthConfig
}

func newUserService(
	userRepository repository.Users,
	verificationRepository repository.Verifications,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	authConfig config.AuthConfig,
) *userService {
	return &userService{
		userRepository:         userRepository,
		verificationRepository: verificationRepository,
		hasher:                 hasher,
		tokenManager:           tokenManager,
		otpGenerator:           otpGenerator,
		authConfig:             authConfig,
	}
}

type RegisterInput struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	Dob                string
	Password           string
	UserType           domain.UserType
	CompanyName        string
	CompanyDescription string
}

type RegistrationResult struct {
	UserID           int64
	VerificationCode string
}

type LoginInput struct {
	Email    string
	Phone    string
	Password string
}

type AuthResult struct {
	AccessToken string
	AccessTTL   time.Duration
	User        *domain.User
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Dob       string
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*RegistrationResult, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, ErrMissingContact
	}

	userType := input.UserType
	if userType == "" {
		userType = domain.UserTypeEmployee
	}

	exists, err := s.userRepository.ExistsByContact(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("check existing user failed: %w", err)
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &domain.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              nullString(input.Email),
		Phone:              nullString(input.Phone),
		Dob:                nullString(input.Dob),
		PasswordHash:       passwordHash,
		UserType:           userType,
		CompanyName:        nullString(input.CompanyName),
		CompanyDescription: nullString(input.CompanyDescription),
	}

	userID, err := s.userRepository.Create(ctx, user)
	if err != nil {
		// Two registrations can race past the pre-check; the unique keys
		// on email/phone settle it.
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	code, err := s.issueVerificationCode(ctx, userID, input.Email)
	if err != nil {
		return nil, err
	}

	return &RegistrationResult{UserID: userID, VerificationCode: code}, nil
}

func (s *userService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	var (
		user *domain.User
		err  error
	)

	switch {
	case input.Email != "":
		user, err = s.userRepository.GetByEmail(ctx, input.Email)
	case input.Phone != "":
		user, err = s.userRepository.GetByPhone(ctx, input.Phone)
	default:
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		code, err := s.issueVerificationCode(ctx, user.ID, user.Email.String)
		if err != nil {
			return nil, err
		}
		return nil, &NotVerifiedError{UserID: user.ID, Code: code}
	}

	return s.newAuthResult(user)
}

// Verify consumes a code: it must belong to the user, match exactly and
// not be expired. Consumption deletes the row, so a code is accepted at
// most once even under concurrent attempts.
func (s *userService) Verify(ctx context.Context, userID int64, code string) (*AuthResult, error) {
	verification, err := s.verificationRepository.GetByUserAndCode(ctx, userID, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, fmt.Errorf("find verification failed: %w", err)
	}

	if verification.Expired(time.Now()) {
		return nil, ErrInvalidVerificationCode
	}

	if err := s.userRepository.SetVerified(ctx, userID); err != nil {
		return nil, fmt.Errorf("mark user verified failed: %w", err)
	}

	if err := s.verificationRepository.Delete(ctx, verification.ID); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, fmt.Errorf("consume verification failed: %w", err)
	}

	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user failed: %w", err)
	}

	return s.newAuthResult(user)
}

func (s *userService) ResendCode(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user failed: %w", err)
	}

	return s.issueVerificationCode(ctx, user.ID, user.Email.String)
}

func (s *userService) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Dob = nullString(input.Dob)

	if err := s.userRepository.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	return s.GetOneByID(ctx, id)
}

// issueVerificationCode supersedes every code the user holds, stores a
// fresh one with a rolling expiry and hands delivery to the notification
// queue when the account has an email channel. Delivery failures do not
// fail the calling operation.
func (s *userService) issueVerificationCode(ctx context.Context, userID int64, userEmail string) (string, error) {
	if err := s.verificationRepository.DeleteByUser(ctx, userID); err != nil {
		return "", fmt.Errorf("purge old verification codes failed: %w", err)
	}

	code := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)

	verification := &domain.Verification{
		UserID:    userID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.authConfig.VerificationCodeTTL),
	}

	if _, err := s.verificationRepository.Create(ctx, verification); err != nil {
		return "", fmt.Errorf("store verification code failed: %w", err)
	}

	if userEmail != "" {
		s.enqueueVerificationEmail(ctx, userID, userEmail, code)
	}

	return code, nil
}

func (s *userService) enqueueVerificationEmail(ctx context.Context, userID int64, userEmail, code string) {
	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		return
	}

	t, err := task.NewVerificationEmailTask(userID, userEmail, code)
	if err != nil {
		logger.Error("build verification email task failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	if _, err := queueClient.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue verification email failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *userService) newAuthResult(user *domain.User) (*AuthResult, error) {
	accessToken, ttl, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &AuthResult{AccessToken: accessToken, AccessTTL: ttl, User: user}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
