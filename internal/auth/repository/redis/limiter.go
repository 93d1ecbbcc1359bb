package redis

import (
	"context"
	"strconv"

	pkgRedis "digital-api/pkg/redis"
)

// hitScript bumps the failure counter and starts the window on the first
// failure.
const hitScript = `
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("EXPIRE", KEYS[1], tonumber(ARGV[1]))
end
return n
`

func (r *implLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := r.redis.Get(ctx, attemptsKeyPrefix+email)
	if err != nil {
		if err == pkgRedis.ErrNotFound {
			return true, nil
		}
		r.l.Errorf(ctx, "internal.auth.repository.redis.Allow: %v", err)
		return false, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Allow.ParseInt: %v", err)
		return false, err
	}

	return count < r.maxAttempts, nil
}

func (r *implLoginLimiter) Hit(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.redis.Eval(ctx, hitScript,
		[]string{attemptsKeyPrefix + email},
		int64(r.window.Seconds()),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Hit: %v", err)
		return err
	}
	return nil
}

func (r *implLoginLimiter) Reset(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.redis.Delete(ctx, attemptsKeyPrefix+email); err != nil {
		r.l.Errorf(ctx, "internal.auth.repository.redis.Reset: %v", err)
		return err
	}
	return nil
}
