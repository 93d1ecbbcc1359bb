package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis wraps the Redis operations the service needs.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Eval runs a Lua script; used for atomic compare-and-swap operations.
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
	Close() error
	GetClient() *goredis.Client
}
