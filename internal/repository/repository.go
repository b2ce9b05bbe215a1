package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique or primary key constraint is violated.
	ErrDuplicate = errors.New("duplicate")
	// ErrReference is returned when a foreign key points at a missing row.
	ErrReference = errors.New("missing reference")
)
