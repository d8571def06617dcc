package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
)

func newTestJobService() (*jobService, *MockJobRepository, *MockUserRepository) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	svc := newJobService(jobRepo, userRepo, nil, 0)
	return svc, jobRepo, userRepo
}

func TestJobService_GetAll_ClampsPaging(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()

	jobRepo.On("GetAll", mock.Anything, 20, 0, (*repository.JobFilters)(nil)).Return([]*domain.Job{}, nil).Times(3)

	_, err := svc.GetAll(context.Background(), -5, 0, nil)
	require.NoError(t, err)

	_, err = svc.GetAll(context.Background(), 0, 500, nil)
	require.NoError(t, err)

	_, err = svc.GetAll(context.Background(), 0, -1, nil)
	require.NoError(t, err)

	jobRepo.AssertExpectations(t)
}

func TestJobService_GetAll_PassesFilters(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()

	category := "IT"
	filters := &repository.JobFilters{Category: &category}
	jobRepo.On("GetAll", mock.Anything, 10, 5, filters).Return([]*domain.Job{{ID: 1}}, nil)

	jobs, err := svc.GetAll(context.Background(), 5, 10, filters)

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobService_GetOneByID_NotFound(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()

	jobRepo.On("GetActiveByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := svc.GetOneByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobService_Create_EmployeeRejected(t *testing.T) {
	svc, _, userRepo := newTestJobService()

	userRepo.On("GetOneByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, UserType: domain.UserTypeEmployee}, nil)

	_, err := svc.Create(context.Background(), 7, CreateJobInput{Position: "Go Developer", Location: "Almaty"})

	assert.ErrorIs(t, err, ErrEmployerOnly)
}

func TestJobService_Create_CompanyNameFromProfile(t *testing.T) {
	svc, jobRepo, userRepo := newTestJobService()

	employer := &domain.User{
		ID:          3,
		UserType:    domain.UserTypeEmployer,
		CompanyName: sql.NullString{String: "Acme Ltd", Valid: true},
	}
	userRepo.On("GetOneByID", mock.Anything, int64(3)).Return(employer, nil)
	jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
		return j.CompanyName == "Acme Ltd" && j.CreatedBy == 3
	})).Return(int64(11), nil)
	jobRepo.On("GetOneByID", mock.Anything, int64(11)).Return(&domain.Job{ID: 11, CompanyName: "Acme Ltd", CreatedBy: 3}, nil)

	job, err := svc.Create(context.Background(), 3, CreateJobInput{Position: "Go Developer", Location: "Almaty"})

	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", job.CompanyName)
}

func TestJobService_Create_SubmittedCompanyNameWins(t *testing.T) {
	svc, jobRepo, userRepo := newTestJobService()

	employer := &domain.User{
		ID:          3,
		UserType:    domain.UserTypeEmployer,
		CompanyName: sql.NullString{String: "Acme Ltd", Valid: true},
	}
	userRepo.On("GetOneByID", mock.Anything, int64(3)).Return(employer, nil)
	jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
		return j.CompanyName == "Other Co"
	})).Return(int64(12), nil)
	jobRepo.On("GetOneByID", mock.Anything, int64(12)).Return(&domain.Job{ID: 12, CompanyName: "Other Co", CreatedBy: 3}, nil)

	job, err := svc.Create(context.Background(), 3, CreateJobInput{CompanyName: "Other Co", Position: "Go Developer", Location: "Almaty"})

	require.NoError(t, err)
	assert.Equal(t, "Other Co", job.CompanyName)
}

func TestJobService_Create_NoCompanyNameAnywhere(t *testing.T) {
	svc, _, userRepo := newTestJobService()

	employer := &domain.User{ID: 3, UserType: domain.UserTypeEmployer}
	userRepo.On("GetOneByID", mock.Anything, int64(3)).Return(employer, nil)

	_, err := svc.Create(context.Background(), 3, CreateJobInput{Position: "Go Developer", Location: "Almaty"})

	assert.ErrorIs(t, err, ErrCompanyNameRequired)
}

func TestJobService_GetByEmployer(t *testing.T) {
	svc, jobRepo, userRepo := newTestJobService()

	employer := &domain.User{ID: 3, UserType: domain.UserTypeEmployer}
	userRepo.On("GetOneByID", mock.Anything, int64(3)).Return(employer, nil)
	jobRepo.On("GetByCreator", mock.Anything, int64(3)).Return([]*domain.Job{{ID: 1, CreatedBy: 3}}, nil)

	jobs, err := svc.GetByEmployer(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
