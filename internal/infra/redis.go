package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the Redis connection backing the plato listing cache. The
// URL carries auth and database selection; a failed ping aborts startup
// rather than letting the API run with a half-working cache.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
