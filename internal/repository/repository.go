package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/job-finder/backend/internal/domain"
)

type Users interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	ExistsByContact(ctx context.Context, email, phone string) (bool, error)
	SetVerified(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type Verifications interface {
	Create(ctx context.Context, verification *domain.Verification) (int64, error)
	GetByUserAndCode(ctx context.Context, userID int64, code string) (*domain.Verification, error)
	DeleteByUser(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
}

type Jobs interface {
	Create(ctx context.Context, job *domain.Job) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Job, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Job, error)
	GetAll(ctx context.Context, limit, offset int, filters *JobFilters) ([]*domain.Job, error)
	GetByCreator(ctx context.Context, userID int64) ([]*domain.Job, error)
}

type Applications interface {
	Create(ctx context.Context, application *domain.JobApplication) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.JobApplication, error)
	GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.JobApplication, error)
	GetByJob(ctx context.Context, jobID int64) ([]*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

type Repositories struct {
	Users         Users
	Verifications Verifications
	Jobs          Jobs
	Applications  Applications
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:         newUserRepository(db),
		Verifications: newVerificationRepository(db),
		Jobs:          newJobRepository(db),
		Applications:  newApplicationRepository(db),
	}
}
