package cache

import "github.com/artteam09/asmp/pkg/model"

// builtinRecords returns the records a fresh cache is seeded with, so the
// client is usable before the first successful server contact.
func builtinRecords() []*model.PackageRecord {
	return []*model.PackageRecord{
		{
			Name:         "launcher_updater",
			Version:      "1.0.0",
			Description:  "Launcher and updater for ArtStudia applications",
			Author:       "ArtTeam",
			License:      "MIT",
			Type:         model.PackageTypeTool,
			Tags:         []string{"launcher", "updater", "gui"},
			Source:       "https://github.com/artteam9/launcher_updater.git",
			SourceType:   model.SourceTypeGit,
			Dependencies: []string{},
		},
		{
			Name:         "artutils",
			Version:      "1.2.0",
			Description:  "Utility functions for ArtTeam projects",
			Author:       "ArtTeam",
			License:      "MIT",
			Type:         model.PackageTypeLibrary,
			Tags:         []string{"utilities", "helpers", "tools"},
			Source:       "artutils",
			SourceType:   model.SourceTypePypi,
			Dependencies: []string{},
		},
	}
}
