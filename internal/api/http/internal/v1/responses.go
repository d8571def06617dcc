package v1

import (
	"database/sql"
	"time"

	"github.com/job-finder/backend/internal/domain"
)

type userResponse struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              *string   `json:"email"`
	Phone              *string   `json:"phone"`
	Dob                *string   `json:"dob"`
	Verified           bool      `json:"verified"`
	IsActive           bool      `json:"is_active"`
	UserType           string    `json:"user_type"`
	CompanyName        *string   `json:"company_name"`
	CompanyDescription *string   `json:"company_description"`
	CreatedAt          time.Time `json:"created_at"`
} // @name User

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              nullableString(user.Email),
		Phone:              nullableString(user.Phone),
		Dob:                nullableString(user.Dob),
		Verified:           user.Verified,
		IsActive:           user.IsActive,
		UserType:           string(user.UserType),
		CompanyName:        nullableString(user.CompanyName),
		CompanyDescription: nullableString(user.CompanyDescription),
		CreatedAt:          user.CreatedAt,
	}
}

type jobResponse struct {
	ID           int64     `json:"id"`
	CompanyName  string    `json:"company_name"`
	Position     string    `json:"position"`
	Location     string    `json:"location"`
	SalaryMin    *int64    `json:"salary_min"`
	SalaryMax    *int64    `json:"salary_max"`
	JobType      *string   `json:"job_type"`
	Category     *string   `json:"category"`
	Description  *string   `json:"description"`
	Requirements *string   `json:"requirements"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
} // @name Job

func newJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		ID:           job.ID,
		CompanyName:  job.CompanyName,
		Position:     job.Position,
		Location:     job.Location,
		SalaryMin:    nullableInt64(job.SalaryMin),
		SalaryMax:    nullableInt64(job.SalaryMax),
		JobType:      nullableString(job.JobType),
		Category:     nullableString(job.Category),
		Description:  nullableString(job.Description),
		Requirements: nullableString(job.Requirements),
		IsActive:     job.IsActive,
		CreatedAt:    job.CreatedAt,
	}
}

func newJobListResponse(jobs []*domain.Job) []jobResponse {
	res := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		res = append(res, newJobResponse(job))
	}
	return res
}

type applicationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
} // @name JobApplication

func newApplicationResponse(application *domain.JobApplication) applicationResponse {
	return applicationResponse{
		ID:        application.ID,
		UserID:    application.UserID,
		JobID:     application.JobID,
		Status:    string(application.Status),
		AppliedAt: application.AppliedAt,
	}
}

func newApplicationListResponse(applications []*domain.JobApplication) []applicationResponse {
	res := make([]applicationResponse, 0, len(applications))
	for _, application := range applications {
		res = append(res, newApplicationResponse(application))
	}
	return res
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
