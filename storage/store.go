package storage

import (
	"context"
)

// ListStore represents a store of named, append-only lists of text entries.
type ListStore interface {
	// Range returns the whole list stored at key, oldest entry first. A key
	// that was never appended to yields an empty list, not an error.
	Range(ctx context.Context, key string) ([]string, error)

	// Append adds value at the end of the list stored at key, creating the
	// list if needed, and returns the full updated list.
	Append(ctx context.Context, key string, value string) ([]string, error)

	// Info returns a human-readable description of the backend.
	Info(ctx context.Context) (string, error)
}
