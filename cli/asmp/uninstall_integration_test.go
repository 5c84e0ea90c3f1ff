//go:build integration

package main

import (
	"testing"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninstall_RemovesLedgerEntry(t *testing.T) {
	tempDir := t.TempDir()
	seedLedger(t, tempDir, registryPackages()...)

	output, err := runCLI(t, "--config-dir", tempDir, "uninstall", "artutils")
	require.NoError(t, err)
	assert.Contains(t, output, "Package artutils removed")

	records := installedPackages(t, tempDir)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.NotEqual(t, "artutils", rec.Name, "the uninstalled package must be gone")
	}
}

func TestUninstall_NotInstalledFails(t *testing.T) {
	tempDir := t.TempDir()
	seedLedger(t, tempDir, registryPackages()[0])

	_, err := runCLI(t, "--config-dir", tempDir, "uninstall", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotInstalled)
	assert.Contains(t, err.Error(), "ghost")

	// The ledger keeps its entries.
	assert.Len(t, installedPackages(t, tempDir), 1)
}

func TestUninstall_EmptyLedgerFails(t *testing.T) {
	tempDir := t.TempDir()

	_, err := runCLI(t, "--config-dir", tempDir, "uninstall", "artutils")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotInstalled)
}

func TestUninstall_DoesNotNeedServer(t *testing.T) {
	// No server is running and the config points nowhere.
	tempDir := t.TempDir()
	seedLedger(t, tempDir, registryPackages()[1])

	output, err := runCLI(t, "--config-dir", tempDir, "uninstall", "brushkit")
	require.NoError(t, err, "uninstall is a purely local operation")
	assert.Contains(t, output, "Package brushkit removed")
}
