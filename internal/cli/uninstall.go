package cli

import (
	"github.com/artteam09/asmp/internal/logger"
	"github.com/artteam09/asmp/pkg/errors"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall <package>",
		Short: "Uninstall a package",
		Long:  "Remove a package from the installed ledger.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runUninstall(args[0])
		},
	}

	return cmd
}

func runUninstall(name string) error {
	mgr, err := ledgerManager()
	if err != nil {
		return err
	}

	removed, err := mgr.RecordUninstall(name)
	if err != nil {
		return err
	}
	if !removed {
		return errors.Wrap(errors.ErrNotInstalled, name)
	}

	logger.Successf("Package %s removed", name)
	return nil
}
