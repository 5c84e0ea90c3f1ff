package model

import "github.com/hashicorp/go-version"

// ServerInfo describes the registry server as reported by its status
// endpoint.
type ServerInfo struct {
	Name          string `json:"name" yaml:"name"`
	APIVersion    string `json:"api_version" yaml:"api_version"`
	PackagesCount int    `json:"packages_count" yaml:"packages_count"`
	Uptime        string `json:"uptime" yaml:"uptime"`
}

// GetAPIVersion returns the parsed API version of the server, or nil when
// the reported version does not parse.
func (s *ServerInfo) GetAPIVersion() *version.Version {
	v, err := version.NewVersion(s.APIVersion)
	if err != nil {
		return nil
	}
	return v
}

// APINewerThan reports whether the server's API version is strictly newer
// than the given client API version. It returns false when either version
// does not parse.
func (s *ServerInfo) APINewerThan(clientAPIVersion string) bool {
	sv := s.GetAPIVersion()
	if sv == nil {
		return false
	}
	cv, err := version.NewVersion(clientAPIVersion)
	if err != nil {
		return false
	}
	return sv.GreaterThan(cv)
}
