package domain

import "errors"

var (
	// ErrNotFound means the requested record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique field (email, phone) is already taken.
	ErrDuplicate = errors.New("duplicate unique field")
)
