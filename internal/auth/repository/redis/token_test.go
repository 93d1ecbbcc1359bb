package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-api/internal/auth/repository"
	"digital-api/pkg/log"
	pkgRedis "digital-api/pkg/redis"
)

func newTestRedis(t *testing.T) pkgRedis.IRedis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return pkgRedis.NewWithClient(client)
}

func TestTokenRepository_SaveAndRotate(t *testing.T) {
	repo := NewTokenRepository(log.NewNop(), newTestRedis(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "u1", "tok-1", time.Hour))

	// Rotation with the stored token succeeds.
	require.NoError(t, repo.Rotate(ctx, "u1", "tok-1", "tok-2", time.Hour))

	// Replaying the consumed token fails and leaves tok-2 in place.
	err := repo.Rotate(ctx, "u1", "tok-1", "tok-3", time.Hour)
	assert.ErrorIs(t, err, repository.ErrTokenMismatch)

	// The surviving token still rotates.
	require.NoError(t, repo.Rotate(ctx, "u1", "tok-2", "tok-4", time.Hour))
}

func TestTokenRepository_RotateWithoutSave(t *testing.T) {
	repo := NewTokenRepository(log.NewNop(), newTestRedis(t))

	err := repo.Rotate(context.Background(), "u1", "tok-1", "tok-2", time.Hour)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTokenRepository_Delete(t *testing.T) {
	repo := NewTokenRepository(log.NewNop(), newTestRedis(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "u1", "tok-1", time.Hour))
	require.NoError(t, repo.Delete(ctx, "u1"))

	err := repo.Rotate(ctx, "u1", "tok-1", "tok-2", time.Hour)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	// Deleting an absent token is not an error.
	require.NoError(t, repo.Delete(ctx, "u1"))
}

func TestLoginLimiter(t *testing.T) {
	limiter := NewLoginLimiter(log.NewNop(), newTestRedis(t), 3, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Hit(ctx, "a@example.com"))
	}

	allowed, err = limiter.Allow(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other accounts are unaffected.
	allowed, err = limiter.Allow(ctx, "b@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	// A successful login clears the counter.
	require.NoError(t, limiter.Reset(ctx, "a@example.com"))
	allowed, err = limiter.Allow(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
