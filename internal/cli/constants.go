package cli

import "time"

// Version information for the asmp binary.
const (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// DefaultServerURL is the registry server used until set-server
// configures another one.
const DefaultServerURL = "https://api.artstudia.com"

// Default values for formatted output.
const (
	// MaxDescriptionLength is the maximum length of a package description to display.
	MaxDescriptionLength = 50
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)

// Pacing of the simulated install progress rendering.
const (
	downloadBarSegments = 5
	downloadStepDelay   = 300 * time.Millisecond
	dependencyStepDelay = 500 * time.Millisecond
	scriptDelay         = time.Second
)
