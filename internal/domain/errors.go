package domain

import "errors"

// Sentinel errors used across layers. Validation errors are recovered at
// the screen boundary and rendered as inline field messages; none of them
// is fatal to the process.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrShortPassword      = errors.New("password too short")
)
