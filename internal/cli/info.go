package cli

import (
	"context"

	"github.com/artteam09/asmp/pkg/errors"
	"github.com/artteam09/asmp/pkg/registry"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show detailed information about a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0])
		},
	}
}

func runInfo(ctx context.Context, name string) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	client, _, err := loadClientAndConfig(registry.Hooks{})
	if err != nil {
		return err
	}

	rec := client.Info(ctx, name, "")
	if rec == nil {
		return errors.Wrap(errors.ErrPackageNotFound, name)
	}

	return renderPackageDetails(rec)
}
