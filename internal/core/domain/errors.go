package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers must not be able to tell which factor failed.
	ErrInvalidCredentials = errors.New("incorrect login or password")

	// ErrAuthenticationRequired covers missing, unknown and expired session
	// tokens uniformly.
	ErrAuthenticationRequired = errors.New("authentication required")

	ErrForbidden        = errors.New("access forbidden")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("username already taken")
	ErrInvalidRole      = errors.New("unrecognized role")

	// ErrStoreUnavailable marks infrastructure failures that must surface as
	// opaque internal errors, never as an authentication or not-found result.
	ErrStoreUnavailable = errors.New("backing store unavailable")
)
