package cli

import (
	"context"
	"fmt"

	"github.com/artteam09/asmp/pkg/registry"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for packages",
		Long: `Search for packages on the configured registry server.

Results are merged into the local package cache. When the server cannot
be reached the search falls back to the cached packages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runSearch(ctx context.Context, query string) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	client, _, err := loadClientAndConfig(registry.Hooks{})
	if err != nil {
		return err
	}

	results := client.Search(ctx, query)
	return renderPackages(results, fmt.Sprintf("No packages found matching '%s'", query))
}
