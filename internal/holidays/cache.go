package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedClient wraps a holiday source with a redis day-cache. Holiday sets
// for a concrete date do not change, so entries are safe to keep for the
// configured TTL. Any cache failure falls through to the live fetch.
type CachedClient struct {
	inner Source
	rdb   *redis.Client
	ttl   time.Duration
}

// Source is implemented by Client and by test fakes.
type Source interface {
	HolidayNames(ctx context.Context, date, countryCode string) ([]string, error)
}

func NewCachedClient(inner Source, rdb *redis.Client, ttl time.Duration) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(date, countryCode string) string {
	return fmt.Sprintf("holidays:%s:%s", countryCode, date)
}

func (c *CachedClient) HolidayNames(ctx context.Context, date, countryCode string) ([]string, error) {
	key := cacheKey(date, countryCode)

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err == nil {
			return names, nil
		}
		// Corrupt entry: drop it and refetch.
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[Holidays] cache read failed, fetching live: %v", err)
	}

	names, err := c.inner.HolidayNames(ctx, date, countryCode)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(names); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Printf("[Holidays] cache write failed: %v", err)
		}
	}
	return names, nil
}
