package cli

import (
	"github.com/artteam09/asmp/internal/logger"
	"github.com/spf13/cobra"
)

// NewSetServerCmd creates the set-server command.
func NewSetServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <url>",
		Short: "Point the client at a different package server",
		Long: `Set the package server URL and reset the remaining settings to their defaults.

The URL must include a scheme and a host, for example https://api.artstudia.com.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSetServer(args[0])
		},
	}
}

func runSetServer(rawURL string) error {
	store, err := configStore()
	if err != nil {
		return err
	}

	cfg, err := store.SetServerURL(rawURL)
	if err != nil {
		return err
	}

	logger.Successf("Server URL updated: %s", cfg.ServerURL)

	return nil
}
