package auth

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email,
	// wrong password, and deactivated accounts. Collapsing them keeps
	// account existence unguessable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken          = errors.New("email already registered")
	ErrPhoneTaken          = errors.New("phone already registered")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)
