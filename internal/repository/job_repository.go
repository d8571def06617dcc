package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/job-finder/backend/internal/domain"
)

// JobFilters combine conjunctively; nil fields are skipped.
type JobFilters struct {
	Category  *string
	JobType   *string
	Search    *string
	MinSalary *int64
	MaxSalary *int64
	Location  *string
}

const jobColumns = `id, company_name, position, location, salary_min, salary_max, job_type, category, description, requirements, is_active, created_by, created_at, updated_at`

type jobRepository struct {
	db *sqlx.DB
}

func newJobRepository(db *sqlx.DB) *jobRepository {
	return &jobRepository{
		db: db,
	}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) (int64, error) {
	const query = `
	INSERT INTO jobs
	(company_name, position, location, salary_min, salary_max, job_type, category, description, requirements, created_by)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		job.CompanyName,
		job.Position,
		job.Location,
		job.SalaryMin,
		job.SalaryMax,
		job.JobType,
		job.Category,
		job.Description,
		job.Requirements,
		job.CreatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("db insert job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *jobRepository) GetOneByID(ctx context.Context, id int64) (*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?;`

	var job domain.Job
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select job by id failed: %w", err)
	}

	return &job, nil
}

func (r *jobRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = ? AND is_active = TRUE;`

	var job domain.Job
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select active job by id failed: %w", err)
	}

	return &job, nil
}

func (r *jobRepository) GetAll(ctx context.Context, limit, offset int, filters *JobFilters) ([]*domain.Job, error) {
	query, args := buildJobListQuery(filters)
	args = append(args, limit, offset)

	jobs := make([]*domain.Job, 0)
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("select jobs failed: %w", err)
	}

	return jobs, nil
}

// buildJobListQuery assembles the directory listing: always active-only,
// newest first, paginated by the two trailing LIMIT/OFFSET args appended
// by the caller.
func buildJobListQuery(filters *JobFilters) (string, []interface{}) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active = TRUE`
	args := []interface{}{}

	if filters != nil {
		if filters.Category != nil {
			query += ` AND category = ?`
			args = append(args, *filters.Category)
		}

		if filters.JobType != nil {
			query += ` AND job_type = ?`
			args = append(args, *filters.JobType)
		}

		if filters.Search != nil && *filters.Search != "" {
			pattern := "%" + strings.ToLower(*filters.Search) + "%"
			query += ` AND (LOWER(position) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(description) LIKE ?)`
			args = append(args, pattern, pattern, pattern)
		}

		// A job matches min_salary when it can pay at least that much,
		// and max_salary when it can be had for at most that much.
		if filters.MinSalary != nil {
			query += ` AND salary_max >= ?`
			args = append(args, *filters.MinSalary)
		}

		if filters.MaxSalary != nil {
			query += ` AND salary_min <= ?`
			args = append(args, *filters.MaxSalary)
		}

		if filters.Location != nil && *filters.Location != "" {
			query += ` AND LOWER(location) LIKE ?`
			args = append(args, "%"+strings.ToLower(*filters.Location)+"%")
		}
	}

	query += `
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?`

	return query, args
}

func (r *jobRepository) GetByCreator(ctx context.Context, userID int64) ([]*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE created_by = ? ORDER BY created_at DESC;`

	jobs := make([]*domain.Job, 0)
	if err := r.db.SelectContext(ctx, &jobs, query, userID); err != nil {
		return nil, fmt.Errorf("select jobs by creator failed: %w", err)
	}

	return jobs, nil
}
