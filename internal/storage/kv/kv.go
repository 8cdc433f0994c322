package kv

import (
	"context"
	"errors"
)

// Keys under which the application collections are persisted.
const (
	KeyUsers = "users"
	KeyNotes = "pro_notes"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the local key-value store holding the JSON-serialized
// collections. Every value is written whole; there are no partial updates.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
