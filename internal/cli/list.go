package cli

import (
	"strings"

	"github.com/artteam09/asmp/pkg/model"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Long: `List all packages recorded in the installed ledger.

Use --name to filter packages by name.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter packages by name (partial match)")

	return cmd
}

func runList(nameFilter string) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	mgr, err := ledgerManager()
	if err != nil {
		return err
	}

	records, err := mgr.List()
	if err != nil {
		return err
	}

	if nameFilter != "" {
		filtered := make([]*model.PackageRecord, 0, len(records))
		for _, rec := range records {
			if strings.Contains(strings.ToLower(rec.Name), strings.ToLower(nameFilter)) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return renderInstalled(records)
}
