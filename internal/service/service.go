package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/domain"
	"github.com/job-finder/backend/internal/repository"
	"github.com/job-finder/backend/pkg/auth"
	"github.com/job-finder/backend/pkg/hash"
	"github.com/job-finder/backend/pkg/otp"
)

type Services struct {
	Users        Users
	Jobs         Jobs
	Applications Applications
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	JobCache     redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users: newUserService(
			deps.Repos.Users,
			deps.Repos.Verifications,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.Config.Auth,
		),
		Jobs: newJobService(
			deps.Repos.Jobs,
			deps.Repos.Users,
			deps.JobCache,
			deps.Config.Cache.JobTTL,
		),
		Applications: newApplicationService(
			deps.Repos.Applications,
			deps.Repos.Jobs,
			deps.Repos.Users,
		),
	}
}

type Users interface {
	Register(ctx context.Context, input RegisterInput) (*RegistrationResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Verify(ctx context.Context, userID int64, code string) (*AuthResult, error)
	ResendCode(ctx context.Context, userID int64) (string, error)
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*domain.User, error)
}

type Jobs interface {
	GetAll(ctx context.Context, skip, limit int, filters *repository.JobFilters) ([]*domain.Job, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Job, error)
	Create(ctx context.Context, employerID int64, input CreateJobInput) (*domain.Job, error)
	GetByEmployer(ctx context.Context, employerID int64) ([]*domain.Job, error)
}

type Applications interface {
	Apply(ctx context.Context, employeeID, jobID int64) (*domain.JobApplication, error)
	GetMine(ctx context.Context, userID int64) ([]*domain.JobApplication, error)
	GetForJob(ctx context.Context, employerID, jobID int64) ([]*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, employerID, applicationID int64, status domain.ApplicationStatus) error
}
