package domain

import "errors"

// Authentication errors.
var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation failed")
)

// Authorization errors.
var ErrForbidden = errors.New("forbidden")

// Workflow and persistence errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUserNotFound      = errors.New("user not found")
)
