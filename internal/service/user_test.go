package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/domain"
)

func newTestUserService() (*userService, *MockUserRepository, *MockVerificationRepository, *MockPasswordHasher, *MockTokenManager, *MockOtpGenerator) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	hasher := new(MockPasswordHasher)
	tokenManager := new(MockTokenManager)
	otpGenerator := new(MockOtpGenerator)

	svc := newUserService(userRepo, verificationRepo, hasher, tokenManager, otpGenerator, config.AuthConfig{
		VerificationCodeLength: 6,
		VerificationCodeTTL:    10 * time.Minute,
	})

	return svc, userRepo, verificationRepo, hasher, tokenManager, otpGenerator
}

func TestUserService_Register_MissingContact(t *testing.T) {
	svc, _, _, _, _, _ := newTestUserService()

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Password:  "secret123",
	})

	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestUserService_Register_DuplicateContact(t *testing.T) {
	svc, userRepo, _, _, _, _ := newTestUserService()

	userRepo.On("ExistsByContact", mock.Anything, "ann@example.com", "").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Password:  "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateRace(t *testing.T) {
	svc, userRepo, _, hasher, _, _ := newTestUserService()

	userRepo.On("ExistsByContact", mock.Anything, "ann@example.com", "").Return(false, nil)
	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(int64(0), domain.ErrDuplicateEntry)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Password:  "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_Register_IssuesCode(t *testing.T) {
	svc, userRepo, verificationRepo, hasher, _, otpGenerator := newTestUserService()

	userRepo.On("ExistsByContact", mock.Anything, "ann@example.com", "").Return(false, nil)
	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email.String == "ann@example.com" &&
			u.PasswordHash == "hashed" &&
			u.UserType == domain.UserTypeEmployee
	})).Return(int64(7), nil)
	verificationRepo.On("DeleteByUser", mock.Anything, int64(7)).Return(nil)
	otpGenerator.On("RandomCode", 6).Return("123456")
	verificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Verification) bool {
		return v.UserID == 7 && v.Code == "123456" && v.ExpiresAt.After(time.Now())
	})).Return(int64(1), nil)

	result, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Password:  "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, "123456", result.VerificationCode)
	verificationRepo.AssertExpectations(t)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc, userRepo, _, _, _, _ := newTestUserService()

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _, hasher, _, _ := newTestUserService()

	user := &domain.User{ID: 7, PasswordHash: "hashed", Verified: true}
	userRepo.On("GetByEmail", mock.Anything, "ann@example.com").Return(user, nil)
	hasher.On("Verify", "wrong", "hashed").Return(false)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ann@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_UnverifiedReissuesCode(t *testing.T) {
	svc, userRepo, verificationRepo, hasher, _, otpGenerator := newTestUserService()

	user := &domain.User{
		ID:           7,
		Email:        sql.NullString{String: "ann@example.com", Valid: true},
		PasswordHash: "hashed",
		Verified:     false,
	}
	userRepo.On("GetByEmail", mock.Anything, "ann@example.com").Return(user, nil)
	hasher.On("Verify", "secret123", "hashed").Return(true)
	verificationRepo.On("DeleteByUser", mock.Anything, int64(7)).Return(nil)
	otpGenerator.On("RandomCode", 6).Return("654321")
	verificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(2), nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ann@example.com", Password: "secret123"})

	var notVerified *NotVerifiedError
	require.ErrorAs(t, err, &notVerified)
	assert.Equal(t, int64(7), notVerified.UserID)
	assert.Equal(t, "654321", notVerified.Code)
	verificationRepo.AssertCalled(t, "DeleteByUser", mock.Anything, int64(7))
}

func TestUserService_Login_ByPhone(t *testing.T) {
	svc, userRepo, _, hasher, tokenManager, _ := newTestUserService()

	user := &domain.User{
		ID:           9,
		Phone:        sql.NullString{String: "+77001234567", Valid: true},
		PasswordHash: "hashed",
		Verified:     true,
	}
	userRepo.On("GetByPhone", mock.Anything, "+77001234567").Return(user, nil)
	hasher.On("Verify", "secret123", "hashed").Return(true)
	tokenManager.On("NewJWT", int64(9)).Return("token", 24*time.Hour, nil)

	result, err := svc.Login(context.Background(), LoginInput{Phone: "+77001234567", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)
	assert.Equal(t, int64(9), result.User.ID)
}

func TestUserService_Verify_UnknownCode(t *testing.T) {
	svc, _, verificationRepo, _, _, _ := newTestUserService()

	verificationRepo.On("GetByUserAndCode", mock.Anything, int64(7), "000000").Return(nil, domain.ErrNotFound)

	_, err := svc.Verify(context.Background(), 7, "000000")

	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestUserService_Verify_ExpiredCode(t *testing.T) {
	svc, _, verificationRepo, _, _, _ := newTestUserService()

	verification := &domain.Verification{
		ID:        1,
		UserID:    7,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	verificationRepo.On("GetByUserAndCode", mock.Anything, int64(7), "123456").Return(verification, nil)

	_, err := svc.Verify(context.Background(), 7, "123456")

	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestUserService_Verify_ConsumesCode(t *testing.T) {
	svc, userRepo, verificationRepo, _, tokenManager, _ := newTestUserService()

	verification := &domain.Verification{
		ID:        1,
		UserID:    7,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	verificationRepo.On("GetByUserAndCode", mock.Anything, int64(7), "123456").Return(verification, nil)
	userRepo.On("SetVerified", mock.Anything, int64(7)).Return(nil)
	verificationRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	userRepo.On("GetOneByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Verified: true}, nil)
	tokenManager.On("NewJWT", int64(7)).Return("token", 24*time.Hour, nil)

	result, err := svc.Verify(context.Background(), 7, "123456")

	require.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)
	verificationRepo.AssertCalled(t, "Delete", mock.Anything, int64(1))
}

func TestUserService_Verify_CodeAlreadyConsumed(t *testing.T) {
	svc, userRepo, verificationRepo, _, _, _ := newTestUserService()

	verification := &domain.Verification{
		ID:        1,
		UserID:    7,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	verificationRepo.On("GetByUserAndCode", mock.Anything, int64(7), "123456").Return(verification, nil)
	userRepo.On("SetVerified", mock.Anything, int64(7)).Return(nil)
	verificationRepo.On("Delete", mock.Anything, int64(1)).Return(domain.ErrNoRowsAffected)

	_, err := svc.Verify(context.Background(), 7, "123456")

	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestUserService_ResendCode_SupersedesOldCodes(t *testing.T) {
	svc, userRepo, verificationRepo, _, _, otpGenerator := newTestUserService()

	user := &domain.User{ID: 7, Email: sql.NullString{String: "ann@example.com", Valid: true}}
	userRepo.On("GetOneByID", mock.Anything, int64(7)).Return(user, nil)
	verificationRepo.On("DeleteByUser", mock.Anything, int64(7)).Return(nil)
	otpGenerator.On("RandomCode", 6).Return("999999")
	verificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(3), nil)

	code, err := svc.ResendCode(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "999999", code)
	verificationRepo.AssertCalled(t, "DeleteByUser", mock.Anything, int64(7))
}

func TestUserService_ResendCode_UnknownUser(t *testing.T) {
	svc, userRepo, _, _, _, _ := newTestUserService()

	userRepo.On("GetOneByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := svc.ResendCode(context.Background(), 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
