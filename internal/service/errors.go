package service

import "errors"

var (
	// ErrInvalidInput indicates missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// It is returned for unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrForbidden indicates the caller does not own the resource.
	ErrForbidden = errors.New("no access")
	// ErrNotFound indicates the resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation.
	ErrConflict = errors.New("conflict")
)
