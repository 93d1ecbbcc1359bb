package repository

import (
	"context"
	"time"
)

// TokenRepository stores the single active refresh token per user.
//
//go:generate mockery --name TokenRepository
type TokenRepository interface {
	// Save stores token as the user's active refresh token, replacing
	// any previous one.
	Save(ctx context.Context, userID, token string, ttl time.Duration) error

	// Rotate atomically swaps old for new. It fails with
	// ErrTokenMismatch or ErrTokenNotFound when old is not the stored
	// token, in which case the stored token is left untouched.
	Rotate(ctx context.Context, userID, old, new string, ttl time.Duration) error

	// Delete removes the user's active refresh token.
	Delete(ctx context.Context, userID string) error
}

// LoginLimiter throttles repeated login failures per account.
//
//go:generate mockery --name LoginLimiter
type LoginLimiter interface {
	// Allow reports whether another login attempt is permitted.
	Allow(ctx context.Context, email string) (bool, error)

	// Hit records a failed attempt.
	Hit(ctx context.Context, email string) error

	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
