package domain

import (
	"database/sql"
	"time"
)

// Job is a posting. CreatedBy holds the posting employer's account id and
// is the authority for every employer-side ownership check; company_name
// is display data.
type Job struct {
	ID           int64          `db:"id"`
	CompanyName  string         `db:"company_name"`
	Position     string         `db:"position"`
	Location     string         `db:"location"`
	SalaryMin    sql.NullInt64  `db:"salary_min"`
	SalaryMax    sql.NullInt64  `db:"salary_max"`
	JobType      sql.NullString `db:"job_type"`
	Category     sql.NullString `db:"category"`
	Description  sql.NullString `db:"description"`
	Requirements sql.NullString `db:"requirements"`
	IsActive     bool           `db:"is_active"`
	CreatedBy    int64          `db:"created_by"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
