package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/job-finder/backend/internal/domain"
)

type verificationRepository struct {
	db *sqlx.DB
}

func newVerificationRepository(db *sqlx.DB) *verificationRepository {
	return &verificationRepository{
		db: db,
	}
}

func (r *verificationRepository) Create(ctx context.Context, verification *domain.Verification) (int64, error) {
	const query = `
	INSERT INTO verifications (user_id, code, expires_at)
	VALUES (?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query, verification.UserID, verification.Code, verification.ExpiresAt)
	if err != nil {
		return 0, fmt.Errorf("db insert verification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *verificationRepository) GetByUserAndCode(ctx context.Context, userID int64, code string) (*domain.Verification, error) {
	const query = `
	SELECT id, user_id, code, expires_at, created_at
	FROM verifications
	WHERE user_id = ? AND code = ?;
	`

	var verification domain.Verification
	if err := r.db.GetContext(ctx, &verification, query, userID, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select verification failed: %w", err)
	}

	return &verification, nil
}

// DeleteByUser purges every code a user holds. Called before issuing a
// fresh one so older codes are superseded.
func (r *verificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	const query = `DELETE FROM verifications WHERE user_id = ?;`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete verifications by user failed: %w", err)
	}

	return nil
}

func (r *verificationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM verifications WHERE id = ?;`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete verification failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
