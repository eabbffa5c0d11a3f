package ports

import "go.trai.ch/cbuild/internal/core/domain"

// CacheStore defines the interface for persisting the build cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load reads the persisted cache. A missing file is not an error and
	// yields an empty cache; a structurally malformed file fails the
	// whole load.
	Load() (*domain.Cache, error)

	// Save serializes every entry, replacing the persisted file
	// atomically.
	Save(cache *domain.Cache) error

	// Delete removes the persisted file. A missing file is not an error.
	Delete() error
}
