//go:generate mockgen -destination=./mocks/cache.go . Manager
package cache

import "github.com/artteam09/asmp/pkg/model"

// Manager defines the interface for managing the local package cache.
type Manager interface {
	// Init seeds the cache file with the built-in records if it does not exist
	Init() error

	// Load reads the cache document; nil when no cache file exists
	Load() (*Cache, error)

	// SearchLocal returns the cached records matching query. Read failures
	// degrade to an empty result, never an error
	SearchLocal(query string) []*model.PackageRecord

	// MergeRemote upserts records into the cache by name and persists it
	MergeRemote(records []*model.PackageRecord) error
}
