// Package cache maintains the local package cache: the client's on-disk
// mirror of registry package records. The cache is searched when the server
// cannot be reached and refreshed from successful remote searches.
package cache

import (
	"encoding/json"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/model"
)

const (
	// FileName is the name of the cache file inside the state directory.
	FileName = "packages.json"

	// InitialPackageCapacity is the initial capacity for the packages slice.
	InitialPackageCapacity = 16
)

// Cache is the on-disk package cache document. Packages holds at most one
// record per name; lookup order is insertion order. The methods on Cache
// are pure in-memory operations. Persistence and timestamp stamping belong
// to the Manager.
type Cache struct {
	Packages      []*model.PackageRecord `json:"packages"`
	LastUpdated   int64                  `json:"last_updated"`
	ClientVersion string                 `json:"client_version"`
}

// NewCache creates an empty cache document.
func NewCache() *Cache {
	return &Cache{
		Packages: make([]*model.PackageRecord, 0, InitialPackageCapacity),
	}
}

// ParseCache parses a cache document from JSON data.
func ParseCache(data []byte) (*Cache, error) {
	var cache Cache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, errors.Wrap(err, "failed to parse package cache")
	}
	return &cache, nil
}

// ToJSON converts the cache document to indented JSON bytes.
func (c *Cache) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal package cache to JSON")
	}
	return data, nil
}

// Find returns the cached record with the given name, or nil.
func (c *Cache) Find(name string) *model.PackageRecord {
	for _, record := range c.Packages {
		if record.Name == name {
			return record
		}
	}
	return nil
}

// Search returns the cached records matching query, in stored order.
func (c *Cache) Search(query string) []*model.PackageRecord {
	results := make([]*model.PackageRecord, 0, len(c.Packages))
	for _, record := range c.Packages {
		if record.MatchesQuery(query) {
			results = append(results, record)
		}
	}
	return results
}

// Upsert inserts record, replacing any existing record with the same name
// in place. New names are appended, so stored order is stable across
// repeated merges.
func (c *Cache) Upsert(record *model.PackageRecord) {
	for i := range c.Packages {
		if c.Packages[i].Name == record.Name {
			c.Packages[i] = record
			return
		}
	}
	c.Packages = append(c.Packages, record)
}
