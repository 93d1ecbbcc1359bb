package redis

import (
	"time"

	"digital-api/internal/auth/repository"
	pkgLog "digital-api/pkg/log"
	pkgRedis "digital-api/pkg/redis"
)

const (
	refreshKeyPrefix  = "auth:refresh:"
	attemptsKeyPrefix = "auth:login_attempts:"

	// opTimeout bounds every Redis call so a slow store cannot hold a
	// request open.
	opTimeout = 2 * time.Second
)

type implTokenRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.TokenRepository = &implTokenRepository{}

func NewTokenRepository(l pkgLog.Logger, redis pkgRedis.IRedis) *implTokenRepository {
	return &implTokenRepository{
		l:     l,
		redis: redis,
	}
}

type implLoginLimiter struct {
	l           pkgLog.Logger
	redis       pkgRedis.IRedis
	maxAttempts int64
	window      time.Duration
}

var _ repository.LoginLimiter = &implLoginLimiter{}

func NewLoginLimiter(l pkgLog.Logger, redis pkgRedis.IRedis, maxAttempts int64, window time.Duration) *implLoginLimiter {
	return &implLoginLimiter{
		l:           l,
		redis:       redis,
		maxAttempts: maxAttempts,
		window:      window,
	}
}
