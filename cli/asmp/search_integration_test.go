//go:build integration

package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/artteam09/asmp/pkg/cache"
	"github.com/artteam09/asmp/pkg/model"
	"github.com/artteam09/asmp/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_RemoteResults(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "search", "brush")
	require.NoError(t, err)

	// Verify header and results are present
	assert.Contains(t, output, "PACKAGE NAME")
	assert.Contains(t, output, "VERSION")
	assert.Contains(t, output, "TYPE")
	assert.Contains(t, output, "DESCRIPTION")

	assert.Contains(t, output, "brushkit")
	assert.Contains(t, output, "0.9.1")
	assert.Contains(t, output, "1 package(s)")

	// Only the matching package is listed.
	assert.NotContains(t, output, "artutils")
	assert.NotContains(t, output, "studio-launcher")
}

func TestSearch_RefreshesLocalCache(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	// The fresh cache starts with artutils 1.2.0; the server offers 2.1.0.
	output, err := runCLI(t, "--config-dir", tempDir, "search", "artutils")
	require.NoError(t, err)
	assert.Contains(t, output, "2.1.0")

	cached, err := cache.NewManager(filepath.Join(tempDir, cache.FileName), "0.1.0").Load()
	require.NoError(t, err)
	require.NotNil(t, cached, "search should have written the cache file")

	rec := cached.Find("artutils")
	require.NotNil(t, rec, "artutils should be cached")
	assert.Equal(t, "2.1.0", rec.Version, "cache should hold the server's version after the search")

	// Records the query did not match keep their seeded entries.
	assert.NotNil(t, cached.Find("launcher_updater"))
}

func TestSearch_FallsBackToCacheWhenServerDown(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())
	srv.Close()

	output, err := runCLI(t, "--config-dir", tempDir, "search", "launcher")
	require.NoError(t, err, "search should fall back to the cache, not fail")

	assert.Contains(t, output, "Falling back to the local package cache")
	assert.Contains(t, output, "launcher_updater", "seeded cache entry should be listed")
	assert.Contains(t, output, "1.0.0")
	assert.NotContains(t, output, "studio-launcher", "server packages are unreachable")
}

func TestSearch_FallsBackToCacheOnServerError(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()
	srv.SearchError = "index rebuilding"

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "search", "artutils")
	require.NoError(t, err)

	assert.Contains(t, output, "index rebuilding", "the server's error message should be surfaced")
	assert.Contains(t, output, "1.2.0", "the cached version should be listed, not the server's")
	assert.NotContains(t, output, "2.1.0")
}

func TestSearch_NoResults(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "search", "nonexistentpackage")
	require.NoError(t, err)

	assert.Contains(t, output, "No packages found matching 'nonexistentpackage'")
}

func TestSearch_JSONOutput(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "-o", "json", "search", "brush")
	require.NoError(t, err)

	var records []*model.PackageRecord
	require.NoError(t, json.Unmarshal([]byte(output), &records), "JSON output should parse as package records")
	require.Len(t, records, 1)
	assert.Equal(t, "brushkit", records[0].Name)
	assert.Equal(t, "0.9.1", records[0].Version)
}

func TestSearch_YAMLOutput(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "--output", "yaml", "search", "brush")
	require.NoError(t, err)

	assert.Contains(t, output, "name: brushkit")
	assert.Contains(t, output, "version: 0.9.1")
}

func TestSearch_RejectsUnknownOutputFormat(t *testing.T) {
	tempDir := t.TempDir()

	_, err := runCLI(t, "--config-dir", tempDir, "-o", "xml", "search", "brush")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
