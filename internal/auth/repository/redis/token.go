package redis

import (
	"context"
	"time"

	"digital-api/internal/auth/repository"
)

// rotateScript compares-and-swaps the stored refresh token. The swap only
// happens when the stored value equals the presented one, so two
// concurrent refreshes with the same token cannot both succeed.
//
// Returns 1 on success, 0 on mismatch, -1 when no token is stored.
const rotateScript = `
local cur = redis.call("GET", KEYS[1])
if cur == false then
	return -1
end
if cur ~= ARGV[1] then
	return 0
end
redis.call("SETEX", KEYS[1], tonumber(ARGV[3]), ARGV[2])
return 1
`

func (r *implTokenRepository) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.redis.Set(ctx, refreshKeyPrefix+userID, token, ttl); err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implTokenRepository) Rotate(ctx context.Context, userID, old, new string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.redis.Eval(ctx, rotateScript,
		[]string{refreshKeyPrefix + userID},
		old, new, int64(ttl.Seconds()),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Rotate: %v", err)
		return err
	}

	switch res {
	case int64(1):
		return nil
	case int64(0):
		return repository.ErrTokenMismatch
	default:
		return repository.ErrTokenNotFound
	}
}

func (r *implTokenRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.redis.Delete(ctx, refreshKeyPrefix+userID); err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Delete: %v", err)
		return err
	}
	return nil
}
