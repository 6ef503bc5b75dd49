package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Store owns the id-to-product mapping and id generation. A miss is a
// normal result on every operation; no method fails for well-formed input.
type Store interface {
	// List returns an independent snapshot of all stored products, in no
	// particular order. Mutating the result never affects the store.
	List() []Product

	// GetByID reports the product stored under id, if any. Zero, negative
	// and never-assigned ids are ordinary misses.
	GetByID(id int64) (Product, bool)

	// Save stores p. A nil ID receives the next generated id before the
	// write; a non-nil ID overwrites whatever is stored there, last write
	// wins. The returned product always carries a non-nil ID.
	Save(p Product) Product

	// DeleteByID removes the entry for id. Unknown ids are a no-op, so
	// deleting twice is fine.
	DeleteByID(id int64)

	// Len reports the number of stored products.
	Len() int

	Ping(ctx context.Context) error
}
