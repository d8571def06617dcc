package domain

import "errors"

var (
	ErrNotFound       = errors.New("entity not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNoRowsAffected = errors.New("no rows affected")
)
