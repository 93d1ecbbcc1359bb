package repository

import "errors"

var (
	// ErrTokenMismatch means the presented refresh token is not the one
	// currently stored for the user. Either it was already rotated or it
	// is being replayed.
	ErrTokenMismatch = errors.New("refresh token mismatch")

	ErrTokenNotFound = errors.New("refresh token not found")
)
