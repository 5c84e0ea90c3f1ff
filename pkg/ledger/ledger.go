// Package ledger provides a simple JSON-backed record of installed
// packages. The ledger file is a bare array of package records and is
// rewritten wholesale on every change; a single-process caller is assumed.
package ledger

import (
	"encoding/json"
	"os"
	"time"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/fsutil"
	"github.com/artteam09/asmp/pkg/model"
)

const (
	// FileName is the name of the ledger file inside the state directory.
	FileName = "installed_packages.json"

	// InstalledBy is stamped into every entry this client records.
	InstalledBy = "asmp"
)

// ManagerImpl manages the installed-package ledger file at a fixed path.
type ManagerImpl struct {
	path          string
	clientVersion string
}

// NewManager creates a ledger manager for the file at path. clientVersion
// is stamped into every entry the manager records.
func NewManager(path, clientVersion string) *ManagerImpl {
	return &ManagerImpl{path: path, clientVersion: clientVersion}
}

// Path returns the location of the managed ledger file.
func (m *ManagerImpl) Path() string {
	return m.path
}

// Init writes an empty ledger when no file exists yet. An existing file is
// left untouched.
func (m *ManagerImpl) Init() error {
	if _, err := os.Stat(m.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrStateRead, err.Error())
	}
	return m.save([]*model.PackageRecord{})
}

// List returns the installed records in install order. A missing ledger
// file yields an empty list, not an error.
func (m *ManagerImpl) List() ([]*model.PackageRecord, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.PackageRecord{}, nil
		}
		return nil, errors.Wrap(errors.ErrStateRead, err.Error())
	}

	var records []*model.PackageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "failed to parse installed ledger")
	}
	if records == nil {
		records = []*model.PackageRecord{}
	}
	return records, nil
}

// Find returns the installed record with the given name, or nil.
func (m *ManagerImpl) Find(name string) (*model.PackageRecord, error) {
	records, err := m.List()
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.Name == name {
			return record, nil
		}
	}
	return nil, nil
}

// RecordInstall appends record to the ledger, replacing any previous entry
// with the same name. The stored entry is stamped with the install time,
// the installing client name, and the client version; the caller's record
// is not modified.
func (m *ManagerImpl) RecordInstall(record *model.PackageRecord) error {
	records, err := m.List()
	if err != nil {
		return err
	}

	entry := *record
	entry.InstalledAt = time.Now().Unix()
	entry.InstalledBy = InstalledBy
	entry.ClientVersion = m.clientVersion

	kept := make([]*model.PackageRecord, 0, len(records)+1)
	for _, existing := range records {
		if existing.Name != entry.Name {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, &entry)

	return m.save(kept)
}

// RecordUninstall removes the entry with the given name and reports
// whether one existed. When no entry matches, the ledger file is not
// written.
func (m *ManagerImpl) RecordUninstall(name string) (bool, error) {
	records, err := m.List()
	if err != nil {
		return false, err
	}

	kept := make([]*model.PackageRecord, 0, len(records))
	for _, existing := range records {
		if existing.Name != name {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := m.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (m *ManagerImpl) save(records []*model.PackageRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal installed ledger")
	}
	if err := fsutil.WriteFileAtomic(m.path, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrStateWrite, err.Error())
	}
	return nil
}
