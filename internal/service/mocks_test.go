package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByContact(ctx context.Context, email, phone string) (bool, error) {
	args := m.Called(ctx, email, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockVerificationRepository struct{ mock.Mock }

func (m *MockVerificationRepository) Create(ctx context.Context, verification *domain.Verification) (int64, error) {
	args := m.Called(ctx, verification)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVerificationRepository) GetByUserAndCode(ctx context.Context, userID int64, code string) (*domain.Verification, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verification), args.Error(1)
}

func (m *MockVerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockVerificationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) (int64, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) GetOneByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetAll(ctx context.Context, limit, offset int, filters *repository.JobFilters) ([]*domain.Job, error) {
	args := m.Called(ctx, limit, offset, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetByCreator(ctx context.Context, userID int64) ([]*domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Create(ctx context.Context, application *domain.JobApplication) (int64, error) {
	args := m.Called(ctx, application)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) GetOneByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.JobApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) GetByJob(ctx context.Context, jobID int64) ([]*domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, passwordHash string) bool {
	args := m.Called(password, passwordHash)
	return args.Bool(0)
}

type MockTokenManager struct{ mock.Mock }

func (m *MockTokenManager) NewJWT(userID int64) (string, time.Duration, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockTokenManager) Parse(accessToken string) (int64, error) {
	args := m.Called(accessToken)
	return args.Get(0).(int64), args.Error(1)
}

type MockOtpGenerator struct{ mock.Mock }

func (m *MockOtpGenerator) RandomCode(length int) string {
	args := m.Called(length)
	return args.String(0)
}
