package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared redis client, set by Init.
var Conn *redis.Client

// Init connects to redis using REDIS_ADDR (default localhost:6379) and
// verifies the connection with a ping.
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Conn.Ping(ctx).Err()
}
