// Package metadata is the local key/value store for small client records such
// as the persisted session and the guessed currency preference.
package metadata

import (
	"context"
)

// Repository stores opaque values under fixed keys.
type Repository interface {
	// Get returns the value and true, or (nil, false, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set inserts or overwrites the value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
