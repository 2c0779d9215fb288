package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init builds the shared Redis client. Redis is a best-effort layer
// here (catalog cache, order events); callers tolerate its absence.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func RdxGet(ctx context.Context, key string) (string, error) {
	return Conn.Get(ctx, key).Result()
}

func RdxSet(ctx context.Context, key, value string, ttl time.Duration) error {
	return Conn.Set(ctx, key, value, ttl).Err()
}

func RdxDel(ctx context.Context, key string) error {
	return Conn.Del(ctx, key).Err()
}

func Publish(ctx context.Context, channel string, payload []byte) error {
	return Conn.Publish(ctx, channel, payload).Err()
}
