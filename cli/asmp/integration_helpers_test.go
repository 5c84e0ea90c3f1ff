//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/artteam09/asmp/pkg/ledger"
	"github.com/artteam09/asmp/pkg/model"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given arguments and returns
// the captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// registryPackages returns the fixture records the fake registry serves.
// The artutils entry is newer than the copy seeded into fresh caches, so
// tests can observe cache refreshes.
func registryPackages() []*model.PackageRecord {
	return []*model.PackageRecord{
		{
			Name:         "artutils",
			Version:      "2.1.0",
			Description:  "Utility functions for ArtTeam projects",
			Author:       "ArtTeam",
			License:      "MIT",
			Type:         model.PackageTypeLibrary,
			Tags:         []string{"utilities", "helpers"},
			Source:       "artutils",
			SourceType:   model.SourceTypePypi,
			Dependencies: []string{"requests"},
		},
		{
			Name:         "brushkit",
			Version:      "0.9.1",
			Description:  "Brush engine primitives for drawing tools",
			Author:       "ArtTeam",
			License:      "Apache-2.0",
			Type:         model.PackageTypeLibrary,
			Tags:         []string{"drawing", "brushes"},
			Source:       "https://github.com/artteam09/brushkit.git",
			SourceType:   model.SourceTypeGit,
			Dependencies: []string{"numpy", "pillow"},
		},
		{
			Name:         "studio-launcher",
			Version:      "1.4.2",
			Description:  "Desktop launcher for studio applications",
			Author:       "ArtTeam",
			License:      "MIT",
			Type:         model.PackageTypeTool,
			Tags:         []string{"launcher", "desktop"},
			Source:       "https://github.com/artteam09/studio-launcher.git",
			SourceType:   model.SourceTypeGit,
			Dependencies: []string{},
		},
	}
}

// installedPackages reads the ledger inside stateDir.
func installedPackages(t *testing.T, stateDir string) []*model.PackageRecord {
	t.Helper()
	records, err := ledger.NewManager(filepath.Join(stateDir, ledger.FileName), "0.1.0").List()
	require.NoError(t, err)
	return records
}

// seedLedger records the given packages as installed inside stateDir.
func seedLedger(t *testing.T, stateDir string, records ...*model.PackageRecord) {
	t.Helper()
	mgr := ledger.NewManager(filepath.Join(stateDir, ledger.FileName), "0.1.0")
	for _, rec := range records {
		require.NoError(t, mgr.RecordInstall(rec))
	}
}
