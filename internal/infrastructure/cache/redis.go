package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a redis client from a REDIS_URL connection string.
// A failed ping is logged but not fatal: caching is an optional layer.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] invalid REDIS_URL, falling back to defaults: %v", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] redis unreachable: %v", err)
	}
	return rdb
}

// Close closes the client, ignoring errors on shutdown.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
