// Package storage defines the key-value capability used for durable
// application state (cooldown timestamps, audit logs, sealed secrets).
package storage

import "context"

// Store is a string-keyed store of scalar values and ordered lists.
// Keeping it this small lets services swap in-memory, Redis, or Postgres
// persistence without rewiring business code.
//
// Scalar reads return sentinel.ErrNotFound (possibly wrapped) for missing keys.
// Lists are append-only; List on a missing key returns an empty slice.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Append(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, key string) ([][]byte, error)
}
