package cli

import (
	"path/filepath"

	"github.com/artteam09/asmp/pkg/cache"
	"github.com/artteam09/asmp/pkg/config"
	"github.com/artteam09/asmp/pkg/fsutil"
	"github.com/artteam09/asmp/pkg/ledger"
	"github.com/artteam09/asmp/pkg/registry"
)

// These variables will be set by the main package
var (
	ConfigDir    *string
	Verbose      *bool
	OutputFormat *string
)

// stateDir resolves the directory holding the config file, the package
// cache, and the installed ledger.
func stateDir() (string, error) {
	if ConfigDir != nil && *ConfigDir != "" {
		return *ConfigDir, nil
	}
	return fsutil.DefaultConfigDir()
}

func configStore() (*config.Store, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return config.New(filepath.Join(dir, config.FileName), Version), nil
}

// loadConfig loads the client configuration, creating it with defaults
// on first run.
func loadConfig() (*config.ClientConfig, error) {
	store, err := configStore()
	if err != nil {
		return nil, err
	}
	return store.LoadOrInit(DefaultServerURL)
}

// ledgerManager opens the installed-package ledger. It does not touch
// the network or the other state files.
func ledgerManager() (ledger.Manager, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return ledger.NewManager(filepath.Join(dir, ledger.FileName), Version), nil
}

// loadClientAndConfig builds the registry client and bootstraps the
// local state files. This is the bridge function the commands talking to
// the server share.
func loadClientAndConfig(hooks registry.Hooks) (*registry.Client, *config.ClientConfig, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.New(filepath.Join(dir, config.FileName), Version).LoadOrInit(DefaultServerURL)
	if err != nil {
		return nil, nil, err
	}

	cacheMgr := cache.NewManager(filepath.Join(dir, cache.FileName), Version)
	if err := cacheMgr.Init(); err != nil {
		return nil, nil, err
	}

	ledgerMgr := ledger.NewManager(filepath.Join(dir, ledger.FileName), Version)
	if err := ledgerMgr.Init(); err != nil {
		return nil, nil, err
	}

	transport := registry.NewHTTPTransport(cfg.ServerURL, Version, cfg.Timeout())
	return registry.New(transport, cacheMgr, ledgerMgr, Version, hooks), cfg, nil
}
