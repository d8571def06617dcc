package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
	"github.com/job-finder/backend/pkg/logger"
)

const (
	defaultJobPageSize = 20
	maxJobPageSize     = 100
)

// JobFilters is re-exported for callers wiring HTTP queries to the
// directory listing.
type JobFilters = repository.JobFilters

type jobService struct {
	jobRepository  repository.Jobs
	userRepository repository.Users
	cache          redis.UniversalClient
	cacheTTL       time.Duration
}

func newJobService(
	jobRepository repository.Jobs,
	userRepository repository.Users,
	cache redis.UniversalClient,
	cacheTTL time.Duration,
) *jobService {
	return &jobService{
		jobRepository:  jobRepository,
		userRepository: userRepository,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

type CreateJobInput struct {
	CompanyName  string
	Position     string
	Location     string
	SalaryMin    *int64
	SalaryMax    *int64
	JobType      *string
	Category     *string
	Description  *string
	Requirements *string
}

func (s *jobService) GetAll(ctx context.Context, skip, limit int, filters *repository.JobFilters) ([]*domain.Job, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > maxJobPageSize {
		limit = defaultJobPageSize
	}

	return s.jobRepository.GetAll(ctx, limit, skip, filters)
}

// GetOneByID serves the public job detail, active postings only, through
// a short-lived redis read-through cache.
func (s *jobService) GetOneByID(ctx context.Context, id int64) (*domain.Job, error) {
	cacheKey := fmt.Sprintf("job:%d", id)

	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var job domain.Job
			if err := json.Unmarshal(payload, &job); err == nil {
				return &job, nil
			}
		}
	}

	job, err := s.jobRepository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(job); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				logger.Debug("cache job payload failed", zap.Int64("job_id", id), zap.Error(err))
			}
		}
	}

	return job, nil
}

func (s *jobService) Create(ctx context.Context, employerID int64, input CreateJobInput) (*domain.Job, error) {
	employer, err := s.userRepository.GetOneByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get employer failed: %w", err)
	}

	if employer.UserType != domain.UserTypeEmployer {
		return nil, ErrEmployerOnly
	}

	companyName := input.CompanyName
	if companyName == "" {
		companyName = employer.CompanyName.String
	}
	if companyName == "" {
		return nil, ErrCompanyNameRequired
	}

	job := &domain.Job{
		CompanyName:  companyName,
		Position:     input.Position,
		Location:     input.Location,
		SalaryMin:    nullInt64(input.SalaryMin),
		SalaryMax:    nullInt64(input.SalaryMax),
		JobType:      nullStringPtr(input.JobType),
		Category:     nullStringPtr(input.Category),
		Description:  nullStringPtr(input.Description),
		Requirements: nullStringPtr(input.Requirements),
		CreatedBy:    employer.ID,
	}

	id, err := s.jobRepository.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job failed: %w", err)
	}

	created, err := s.jobRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get created job failed: %w", err)
	}

	return created, nil
}

func (s *jobService) GetByEmployer(ctx context.Context, employerID int64) ([]*domain.Job, error) {
	employer, err := s.userRepository.GetOneByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get employer failed: %w", err)
	}

	if employer.UserType != domain.UserTypeEmployer {
		return nil, ErrEmployerOnly
	}

	return s.jobRepository.GetByCreator(ctx, employer.ID)
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullStringPtr(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
