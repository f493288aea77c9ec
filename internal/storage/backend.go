package storage

import "context"

// Backend is an opaque key-value store used for persistence. The rest of
// the application only ever reads and writes whole values by key; the
// on-disk format behind a backend is its own business.
type Backend interface {
	// Get returns the value stored under key, reporting whether it exists.
	// Absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}
