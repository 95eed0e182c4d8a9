package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis adapts a redis client to the Store port.
type Redis struct {
	conn *redis.Client
}

func NewRedis(conn *redis.Client) *Redis {
	return &Redis{conn: conn}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.conn.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.conn.Del(ctx, key).Err()
}
