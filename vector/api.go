package vector

import (
	"context"
)

// Record is a vector stored under an identifier.
type Record[T Scalar] struct {
	// ID is the logical identifier. When empty on Put, the store generates one.
	ID string

	// Vector holds the components.
	Vector *Vector[T]

	// Meta is an opaque payload stored alongside the vector.
	Meta string
}

// Store persists vectors of one element kind.
type Store[T Scalar] interface {
	// Put inserts or replaces records and returns their IDs in order.
	Put(ctx context.Context, records []Record[T]) ([]string, error)

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record[T], error)

	// List returns up to limit records in insertion order. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Record[T], error)

	// Remove deletes the record with the given ID, or returns ErrNotFound.
	Remove(ctx context.Context, id string) error
}
