package redisdb

import (
	"github.com/redis/go-redis/v9"

	"go-ideas/internal/config"
)

// NewClient builds the redis client used for the holiday cache. Returns nil
// when caching is disabled; callers skip the cache layer in that case.
func NewClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
