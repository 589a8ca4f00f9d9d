// Package archive keeps finished season results keyed by run ID.
package archive

import "context"

type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	List(ctx context.Context) ([]Entry[T], error)
	NewID() string
}

// Entry is one stored value with its ID.
type Entry[T any] struct {
	ID    string
	Value T
}
