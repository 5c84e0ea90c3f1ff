//go:build integration

package main

import (
	"testing"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_RecordsPackageInLedger(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()
	srv.InstallScript = "setup.py"

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "install", "brushkit")
	require.NoError(t, err, "install should succeed for a known package")

	assert.Contains(t, output, "Resolving brushkit...")
	assert.Contains(t, output, "Found brushkit@0.9.1")
	assert.Contains(t, output, "Downloading...")
	assert.Contains(t, output, "100%")
	assert.Contains(t, output, "installing dependency numpy")
	assert.Contains(t, output, "installing dependency pillow")
	assert.Contains(t, output, "Running install script...")
	assert.Contains(t, output, "Package brushkit@0.9.1 installed")
	assert.Contains(t, output, "Import it with: import brushkit")

	records := installedPackages(t, tempDir)
	require.Len(t, records, 1)
	assert.Equal(t, "brushkit", records[0].Name)
	assert.Equal(t, "0.9.1", records[0].Version)
	assert.Equal(t, "asmp", records[0].InstalledBy)
	assert.Positive(t, records[0].InstalledAt, "install time should be stamped")
}

func TestInstall_ExplicitVersion(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	output, err := runCLI(t, "--config-dir", tempDir, "install", "--version", "1.4.0", "studio-launcher")
	require.NoError(t, err)

	assert.Contains(t, output, "Found studio-launcher@1.4.0", "the requested version should be resolved")
	assert.Contains(t, output, "installing requested version 1.4.0", "the version mismatch should be surfaced")

	// The ledger keeps the server's record.
	records := installedPackages(t, tempDir)
	require.Len(t, records, 1)
	assert.Equal(t, "studio-launcher", records[0].Name)
	assert.Equal(t, "1.4.2", records[0].Version)
}

func TestInstall_UnknownPackageFails(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	_, err := runCLI(t, "--config-dir", tempDir, "install", "no-such-pkg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)
	assert.Contains(t, err.Error(), "no-such-pkg")

	assert.Empty(t, installedPackages(t, tempDir), "nothing should be recorded")
}

func TestInstall_ServerDownFails(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())
	srv.Close()

	_, err := runCLI(t, "--config-dir", tempDir, "install", "brushkit")
	require.Error(t, err, "install needs the server, unlike search")
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)

	assert.Empty(t, installedPackages(t, tempDir))
}

func TestInstall_DownloadRejectedLeavesLedgerAlone(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()
	srv.DownloadError = "download quota exceeded"

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	_, err := runCLI(t, "--config-dir", tempDir, "install", "brushkit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download quota exceeded")

	assert.Empty(t, installedPackages(t, tempDir), "a rejected download must not be recorded")
}

func TestInstall_Reinstall(t *testing.T) {
	srv := testutil.NewRegistryServer(registryPackages()...)
	defer srv.Close()

	tempDir := t.TempDir()
	testutil.SeedClientConfig(t, tempDir, srv.URL())

	_, err := runCLI(t, "--config-dir", tempDir, "install", "studio-launcher")
	require.NoError(t, err)
	_, err = runCLI(t, "--config-dir", tempDir, "install", "studio-launcher")
	require.NoError(t, err, "reinstalling should succeed")

	records := installedPackages(t, tempDir)
	require.Len(t, records, 1, "reinstalling must not duplicate the ledger entry")
	assert.Equal(t, "studio-launcher", records[0].Name)
}
