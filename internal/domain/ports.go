package domain

import "context"

// KeyValueStore is the persistence port: an atomic per-key string store.
// Implementations can be SQLite-backed or in-memory. Get returns
// ErrNotFound when the key is absent; services translate read failures
// into default values rather than surfacing them.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CatalogSource provides the static recipe catalog. The single production
// implementation is seeded in-memory; the interface exists so screens and
// the filter engine can be tested against small fixture catalogs.
type CatalogSource interface {
	List() []Recipe
	Get(title string) (*Recipe, error)
	Highlights() []Recipe
	SliderItems() []Recipe
}
