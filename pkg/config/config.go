// Package config manages the persisted configuration of the asmp client:
// the registry server URL, the request timeout, and the auto-update flag.
// The configuration lives as a single JSON file inside the client state
// directory and is replaced wholesale on every write.
package config

import (
	"net/url"
	"time"

	"github.com/artteam09/asmp/pkg/errors"
)

const (
	// FileName is the name of the config file inside the state directory.
	FileName = "config.json"

	// DefaultTimeoutSeconds bounds every registry request when no explicit
	// timeout is configured.
	DefaultTimeoutSeconds = 30

	// DefaultAutoUpdate is the initial value of the auto-update flag.
	DefaultAutoUpdate = true
)

// ClientConfig is the persisted client configuration. TimeoutSeconds is
// stored under the "timeout" key and is always interpreted in seconds.
type ClientConfig struct {
	ServerURL      string `json:"server_url" yaml:"server_url"`
	AutoUpdate     bool   `json:"auto_update" yaml:"auto_update"`
	TimeoutSeconds int    `json:"timeout" yaml:"timeout"`
	ClientVersion  string `json:"client_version" yaml:"client_version"`
}

// Timeout returns the configured request timeout as a duration.
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ValidateServerURL checks that raw parses as an absolute URL with both a
// scheme and a host.
func ValidateServerURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidServerURL, err.Error())
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.Wrapf(errors.ErrInvalidServerURL, "%q must include scheme and host", raw)
	}
	return nil
}
