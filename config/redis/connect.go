package redis

import (
	"fmt"

	"digital-api/config"
	pkgRedis "digital-api/pkg/redis"
)

// Connect initializes and returns a Redis client
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
