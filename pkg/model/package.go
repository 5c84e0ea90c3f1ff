// Package model provides the data structures shared across the asmp client:
// package records, server status, and related metadata.
package model

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// PackageType classifies what kind of package a record describes.
type PackageType string

const (
	// PackageTypeLibrary marks a package consumed as a library.
	PackageTypeLibrary PackageType = "library"
	// PackageTypeTool marks a package installed as a standalone tool.
	PackageTypeTool PackageType = "tool"
)

// SourceType identifies where a package is fetched from.
type SourceType string

const (
	// SourceTypeGit marks a package sourced from a git repository.
	SourceTypeGit SourceType = "git"
	// SourceTypePypi marks a package sourced from the PyPI registry.
	SourceTypePypi SourceType = "pypi"
	// SourceTypeOther marks a package with an unclassified source.
	SourceTypeOther SourceType = "other"
)

// PackageRecord describes a single package as stored in the local cache, the
// installed ledger, and the registry wire format. Name is the unique key.
// The install fields (InstalledAt, InstalledBy, ClientVersion) are populated
// only on ledger entries.
type PackageRecord struct {
	Name          string      `json:"name" yaml:"name"`
	Version       string      `json:"version" yaml:"version"`
	Description   string      `json:"description" yaml:"description"`
	Author        string      `json:"author" yaml:"author"`
	License       string      `json:"license" yaml:"license"`
	Type          PackageType `json:"type" yaml:"type"`
	Tags          []string    `json:"tags" yaml:"tags"`
	Source        string      `json:"source" yaml:"source"`
	SourceType    SourceType  `json:"source_type" yaml:"source_type"`
	Dependencies  []string    `json:"dependencies" yaml:"dependencies"`
	InstalledAt   int64       `json:"installed_at,omitempty" yaml:"installed_at,omitempty"`
	InstalledBy   string      `json:"installed_by,omitempty" yaml:"installed_by,omitempty"`
	ClientVersion string      `json:"client_version,omitempty" yaml:"client_version,omitempty"`
}

// GetVersion returns the parsed version of this package, or nil when the
// version string does not parse. Versions are stored as-is; parsing is
// best-effort.
func (p *PackageRecord) GetVersion() *version.Version {
	v, err := version.NewVersion(p.Version)
	if err != nil {
		return nil
	}
	return v
}

// MatchesQuery reports whether the record matches a search query. The match
// is a case-insensitive substring test against the name, the description,
// and the space-joined tag list.
func (p *PackageRecord) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), q)
}
