package cache

import (
	"os"
	"time"

	"github.com/artteam09/asmp/internal/logger"
	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/fsutil"
	"github.com/artteam09/asmp/pkg/model"
)

// ManagerImpl manages the package cache file at a fixed path.
type ManagerImpl struct {
	path          string
	clientVersion string
}

// NewManager creates a cache manager for the file at path. clientVersion is
// stamped into the document on every write.
func NewManager(path, clientVersion string) *ManagerImpl {
	return &ManagerImpl{path: path, clientVersion: clientVersion}
}

// Path returns the location of the managed cache file.
func (m *ManagerImpl) Path() string {
	return m.path
}

// Init writes a cache seeded with the built-in records when no cache file
// exists yet. An existing file is left untouched, even when unreadable.
func (m *ManagerImpl) Init() error {
	if _, err := os.Stat(m.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrStateRead, err.Error())
	}

	cache := NewCache()
	for _, record := range builtinRecords() {
		cache.Upsert(record)
	}
	cache.LastUpdated = time.Now().Unix()
	cache.ClientVersion = m.clientVersion
	return m.save(cache)
}

// Load reads the cache document. It returns (nil, nil) when the file does
// not exist.
func (m *ManagerImpl) Load() (*Cache, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrStateRead, err.Error())
	}
	return ParseCache(data)
}

// SearchLocal returns the cached records matching query, in stored order.
// A missing or unreadable cache yields an empty result; the failure is
// logged as a warning.
func (m *ManagerImpl) SearchLocal(query string) []*model.PackageRecord {
	cache, err := m.Load()
	if err != nil {
		logger.Warnf("Cannot read local package cache: %v", err)
		return []*model.PackageRecord{}
	}
	if cache == nil {
		return []*model.PackageRecord{}
	}
	return cache.Search(query)
}

// MergeRemote merges records into the cache by name and persists the
// result. Existing names are replaced in place and new names are appended
// in input order. The document's LastUpdated and ClientVersion are stamped
// on every merge. Merging the same records twice yields the same package
// list.
func (m *ManagerImpl) MergeRemote(records []*model.PackageRecord) error {
	cache, err := m.Load()
	if err != nil {
		logger.Warnf("Replacing unreadable package cache: %v", err)
		cache = nil
	}
	if cache == nil {
		cache = NewCache()
	}

	for _, record := range records {
		cache.Upsert(record)
	}
	cache.LastUpdated = time.Now().Unix()
	cache.ClientVersion = m.clientVersion
	return m.save(cache)
}

func (m *ManagerImpl) save(cache *Cache) error {
	data, err := cache.ToJSON()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(m.path, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrStateWrite, err.Error())
	}
	return nil
}
