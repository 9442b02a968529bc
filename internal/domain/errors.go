package domain

import "errors"

// Standard application domain errors. Handlers translate these into flash
// messages, redirects, or HTTP status codes.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken indicates a sign-up attempt used a username that is
	// already present in the system.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates a sign-up attempt used an email address that is
	// already present in the system.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials indicates an authentication attempt failed due to
	// an incorrect username or password combination.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyPassword indicates a sign-up attempt with a blank password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
