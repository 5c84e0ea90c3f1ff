package config

import (
	"encoding/json"
	"os"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/fsutil"
)

// Store loads and persists the client configuration at a fixed path.
type Store struct {
	path          string
	clientVersion string
}

// New creates a Store managing the config file at path. clientVersion is
// stamped into every record the store writes.
func New(path, clientVersion string) *Store {
	return &Store{path: path, clientVersion: clientVersion}
}

// Path returns the location of the managed config file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted configuration. It returns (nil, nil) when the
// file does not exist. Keys missing from the file keep their default
// values.
func (s *Store) Load() (*ClientConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrStateRead, err.Error())
	}

	cfg := ClientConfig{
		AutoUpdate:     DefaultAutoUpdate,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	return &cfg, nil
}

// InitDefaults writes and returns a fresh default configuration pointing at
// defaultServerURL.
func (s *Store) InitDefaults(defaultServerURL string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL:      defaultServerURL,
		AutoUpdate:     DefaultAutoUpdate,
		TimeoutSeconds: DefaultTimeoutSeconds,
		ClientVersion:  s.clientVersion,
	}
	if err := s.save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrInit returns the persisted configuration, writing the default one
// on first run. A persisted empty server URL falls back to
// defaultServerURL and a non-positive timeout falls back to the default,
// both in memory only; the file is not rewritten. The returned
// ClientVersion is always the running client's version.
func (s *Store) LoadOrInit(defaultServerURL string) (*ClientConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return s.InitDefaults(defaultServerURL)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	cfg.ClientVersion = s.clientVersion
	return cfg, nil
}

// SetServerURL validates rawURL and replaces the whole configuration with a
// default record pointing at it. Previously customized auto-update or
// timeout values are reset.
func (s *Store) SetServerURL(rawURL string) (*ClientConfig, error) {
	if err := ValidateServerURL(rawURL); err != nil {
		return nil, err
	}
	return s.InitDefaults(rawURL)
}

func (s *Store) save(cfg *ClientConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	if err := fsutil.WriteFileAtomic(s.path, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrStateWrite, err.Error())
	}
	return nil
}
