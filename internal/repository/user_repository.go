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

const userColumns = `id, first_name, last_name, email, phone, dob, password_hash, verified, is_active, user_type, company_name, company_description, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	const query = `
	INSERT INTO users
	(first_name, last_name, email, phone, dob, password_hash, user_type, company_name, company_description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Dob,
		user.PasswordHash,
		user.UserType,
		user.CompanyName,
		user.CompanyDescription,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("db insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = ?;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user by id failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = ?;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE phone = ?;`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user by phone failed: %w", err)
	}

	return &user, nil
}

// ExistsByContact is the registration pre-check. The unique keys on email
// and phone stay the authority for races, this only produces a friendlier
// error for the common case.
func (r *userRepository) ExistsByContact(ctx context.Context, email, phone string) (bool, error) {
	const query = `
	SELECT COUNT(*) FROM users
	WHERE (email = ? AND ? != '') OR (phone = ? AND ? != '');
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, email, email, phone, phone); err != nil {
		return false, fmt.Errorf("count users by contact failed: %w", err)
	}

	return count > 0, nil
}

func (r *userRepository) SetVerified(ctx context.Context, id int64) error {
	const query = `UPDATE users SET verified = TRUE WHERE id = ?;`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("update user verified failed: %w", err)
	}

	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	const query = `UPDATE users SET first_name = ?, last_name = ?, dob = ? WHERE id = ?;`

	_, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.Dob, user.ID)
	if err != nil {
		return fmt.Errorf("update user profile failed: %w", err)
	}

	return nil
}
