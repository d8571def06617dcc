package domain

import (
	"database/sql"
	"time"
)

type UserType string

const (
	UserTypeEmployer UserType = "employer"
	UserTypeEmployee UserType = "employee"
)

func (t UserType) Valid() bool {
	return t == UserTypeEmployer || t == UserTypeEmployee
}

// User is an account of either role. Email and phone are both optional but
// at least one must be present; each is globally unique when set.
type User struct {
	ID                 int64          `db:"id"`
	FirstName          string         `db:"first_name"`
	LastName           string         `db:"last_name"`
	Email              sql.NullString `db:"email"`
	Phone              sql.NullString `db:"phone"`
	Dob                sql.NullString `db:"dob"`
	PasswordHash       string         `db:"password_hash"`
	Verified           bool           `db:"verified"`
	IsActive           bool           `db:"is_active"`
	UserType           UserType       `db:"user_type"`
	CompanyName        sql.NullString `db:"company_name"`
	CompanyDescription sql.NullString `db:"company_description"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}
