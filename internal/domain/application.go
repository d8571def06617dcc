package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending      ApplicationStatus = "pending"
	ApplicationStatusAccepted     ApplicationStatus = "accepted"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusInterviewing:
		return true
	}
	return false
}

// JobApplication links an employee to a job, at most one per (user, job)
// pair. Status is updated in place, no history is kept.
type JobApplication struct {
	ID        int64             `db:"id"`
	UserID    int64             `db:"user_id"`
	JobID     int64             `db:"job_id"`
	Status    ApplicationStatus `db:"status"`
	AppliedAt time.Time         `db:"applied_at"`
}
