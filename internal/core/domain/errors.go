package domain

import "errors"

// Validation failures, rejected before anything is persisted.
var (
	ErrWeakPassword = errors.New("password must be 8-72 characters with uppercase, lowercase, digit, and special character")
	ErrInvalidRole  = errors.New("role must be either user or admin")
	ErrUserExists   = errors.New("username already registered")
)

// Authentication failures. A token referencing a deleted account is an
// authentication failure too, not a lookup miss.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ErrStorage wraps persistence failures surfaced to callers as a sanitized
// internal error.
var ErrStorage = errors.New("storage failure")
