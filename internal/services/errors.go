package services

import "errors"

// Sentinel errors shared across services. Handlers translate these to
// HTTP statuses; "absent" and "hidden by a ban filter" both surface as
// ErrNotFound on purpose, the caller cannot tell them apart.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrForbidden      = errors.New("operation not allowed for this user")
	ErrAlreadyApplied = errors.New("entity already in requested state")

	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrLoginTaken         = errors.New("login already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrCodeInvalid        = errors.New("confirmation code invalid, expired or already applied")
	ErrEmailUnknown       = errors.New("email not registered")
)
