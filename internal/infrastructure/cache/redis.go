package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a redis client from a REDIS_URL style connection
// string and pings it once so a bad URL fails at startup, not on first use.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	return rdb
}

// Close releases the client's connections.
func Close(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("closing redis client: %v", err)
	}
}
