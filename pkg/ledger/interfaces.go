//go:generate mockgen -destination=./mocks/ledger.go . Manager
package ledger

import "github.com/artteam09/asmp/pkg/model"

// Manager defines the interface for the installed-package ledger.
type Manager interface {
	// Init writes an empty ledger file if none exists
	Init() error

	// List returns the installed records in install order; empty when no
	// ledger file exists
	List() ([]*model.PackageRecord, error)

	// Find returns the installed record with the given name, or nil
	Find(name string) (*model.PackageRecord, error)

	// RecordInstall stamps record with install metadata and appends it,
	// replacing any previous entry with the same name
	RecordInstall(record *model.PackageRecord) error

	// RecordUninstall removes the entry with the given name. It reports
	// false without touching the file when no entry exists
	RecordUninstall(name string) (bool, error)
}
