// Package kv provides the durable blob store underneath the trip persistence
// adapter: named keys mapping to opaque byte values, with the single-blob
// semantics of a browser's local storage.
//
// Two implementations exist — a file-backed store (the default) and a
// Postgres-backed store selected when a database URL is configured.
package kv

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when the key has no stored value.
// A missing key is an expected condition (first run), not a failure.
var ErrNoKey = errors.New("key not set")

// Store is a minimal durable key-value blob store.
// Keys are short path-safe identifiers chosen by the caller; values are
// opaque. Set overwrites any prior value as one unit. Delete of a missing
// key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
