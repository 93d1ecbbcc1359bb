package middleware

import "errors"

// Authentication failure variants. Both map to the same client-visible
// outcome; the distinction exists for the audit log only.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid or expired credential")
)
