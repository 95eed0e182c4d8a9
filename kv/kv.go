package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable key-value port shared by the cart store, order
// assembler and payment session. Every caller goes through this interface so
// tests can substitute the in-memory driver.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}
