package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
)

type applicationService struct {
	applicationRepository repository.Applications
	jobRepository         repository.Jobs
	userRepository        repository.Users
}

func newApplicationService(
	applicationRepository repository.Applications,
	jobRepository repository.Jobs,
	userRepository repository.Users,
) *applicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		jobRepository:         jobRepository,
		userRepository:        userRepository,
	}
}

// Apply files an application for the employee. The target job only has to
// exist; an inactive posting can still receive applications. One
// application per (user, job) pair, the unique key settles races.
func (s *applicationService) Apply(ctx context.Context, employeeID, jobID int64) (*domain.JobApplication, error) {
	employee, err := s.userRepository.GetOneByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get employee failed: %w", err)
	}

	if employee.UserType != domain.UserTypeEmployee {
		return nil, ErrEmployeeOnly
	}

	if _, err := s.jobRepository.GetOneByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	if _, err := s.applicationRepository.GetByUserAndJob(ctx, employeeID, jobID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing application failed: %w", err)
	}

	application := &domain.JobApplication{
		UserID: employeeID,
		JobID:  jobID,
		Status: domain.ApplicationStatusPending,
	}

	id, err := s.applicationRepository.Create(ctx, application)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application failed: %w", err)
	}

	created, err := s.applicationRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get created application failed: %w", err)
	}

	return created, nil
}

func (s *applicationService) GetMine(ctx context.Context, userID int64) ([]*domain.JobApplication, error) {
	return s.applicationRepository.GetByUser(ctx, userID)
}

// GetForJob lists the applications on an employer's own posting. A job
// owned by another account is reported as not found rather than revealing
// its applications exist.
func (s *applicationService) GetForJob(ctx context.Context, employerID, jobID int64) ([]*domain.JobApplication, error) {
	if err := s.requireEmployer(ctx, employerID); err != nil {
		return nil, err
	}

	job, err := s.jobRepository.GetOneByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	if job.CreatedBy != employerID {
		return nil, ErrJobNotFound
	}

	return s.applicationRepository.GetByJob(ctx, jobID)
}

func (s *applicationService) UpdateStatus(ctx context.Context, employerID, applicationID int64, status domain.ApplicationStatus) error {
	if err := s.requireEmployer(ctx, employerID); err != nil {
		return err
	}

	if !status.Valid() {
		return ErrInvalidStatus
	}

	application, err := s.applicationRepository.GetOneByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("get application failed: %w", err)
	}

	job, err := s.jobRepository.GetOneByID(ctx, application.JobID)
	if err != nil {
		return fmt.Errorf("get job failed: %w", err)
	}

	if job.CreatedBy != employerID {
		return ErrNotJobOwner
	}

	if err := s.applicationRepository.UpdateStatus(ctx, applicationID, status); err != nil {
		return fmt.Errorf("update application status failed: %w", err)
	}

	return nil
}

func (s *applicationService) requireEmployer(ctx context.Context, userID int64) error {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user failed: %w", err)
	}

	if user.UserType != domain.UserTypeEmployer {
		return ErrEmployerOnly
	}

	return nil
}
