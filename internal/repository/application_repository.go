package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/job-finder/backend/internal/db"
	"github.com/job-finder/backend/internal/domain"
)

const applicationColumns = `id, user_id, job_id, status, applied_at`

type applicationRepository struct {
	db *sqlx.DB
}

func newApplicationRepository(db *sqlx.DB) *applicationRepository {
	return &applicationRepository{
		db: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.JobApplication) (int64, error) {
	const query = `
	INSERT INTO job_applications (user_id, job_id, status)
	VALUES (?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query, application.UserID, application.JobID, application.Status)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("db insert job application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *applicationRepository) GetOneByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = ?;`

	var application domain.JobApplication
	if err := r.db.GetContext(ctx, &application, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select job application by id failed: %w", err)
	}

	return &application, nil
}

func (r *applicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM job_applications WHERE user_id = ? AND job_id = ?;`

	var application domain.JobApplication
	if err := r.db.GetContext(ctx, &application, query, userID, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select job application by user and job failed: %w", err)
	}

	return &application, nil
}

func (r *applicationRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.JobApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM job_applications WHERE user_id = ?;`

	applications := make([]*domain.JobApplication, 0)
	if err := r.db.SelectContext(ctx, &applications, query, userID); err != nil {
		return nil, fmt.Errorf("select job applications by user failed: %w", err)
	}

	return applications, nil
}

func (r *applicationRepository) GetByJob(ctx context.Context, jobID int64) ([]*domain.JobApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = ? ORDER BY applied_at DESC;`

	applications := make([]*domain.JobApplication, 0)
	if err := r.db.SelectContext(ctx, &applications, query, jobID); err != nil {
		return nil, fmt.Errorf("select job applications by job failed: %w", err)
	}

	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	const query = `UPDATE job_applications SET status = ? WHERE id = ?;`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update job application status failed: %w", err)
	}

	return nil
}
