package domain

import "errors"

// Sentinel errors returned by the auth service. These are the only error
// values that cross the core boundary; storage and crypto detail stays below.
var (
	// ErrDuplicateEmail rejects a registration whose email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateUsername rejects a registration whose username is already taken.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrAuthenticationFailed covers every credential failure: unknown email,
	// wrong password, and malformed, forged or expired tokens. One value for
	// all of them so callers cannot tell which check failed.
	ErrAuthenticationFailed = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a cryptographically valid token refers
	// to an account that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
