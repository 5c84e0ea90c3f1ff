package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artteam09/asmp/pkg/registry"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var pkgVersion string

	cmd := &cobra.Command{
		Use:   "install <package>",
		Short: "Install a package",
		Long: `Install a package from the configured registry server.
The installation is recorded in the local ledger once the server confirms
the download location.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), args[0], pkgVersion)
		},
	}

	cmd.Flags().StringVar(&pkgVersion, "version", "", "Install a specific version instead of the latest")

	return cmd
}

func runInstall(ctx context.Context, name, pkgVersion string) error {
	client, _, err := loadClientAndConfig(installHooks())
	if err != nil {
		return err
	}
	return client.Install(ctx, name, pkgVersion)
}

// installHooks renders install progress: a segmented download bar and
// per-dependency lines, paced like an interactive installer.
func installHooks() registry.Hooks {
	return registry.Hooks{OnEvent: renderInstallEvent}
}

func renderInstallEvent(e registry.Event) {
	switch e.Phase {
	case "resolving":
		if e.ID == "" {
			fmt.Printf("Resolving %s...\n", e.Msg)
		} else {
			fmt.Printf("Found %s\n", e.Msg)
		}
	case "downloading":
		for i := 1; i <= downloadBarSegments; i++ {
			bar := strings.Repeat("█", i) + strings.Repeat("░", downloadBarSegments-i)
			fmt.Printf("Downloading... [%s] %d%%\n", bar, i*100/downloadBarSegments)
			time.Sleep(downloadStepDelay)
		}
	case "dependencies":
		fmt.Printf("  installing dependency %s...\n", e.Msg)
		time.Sleep(dependencyStepDelay)
	case "script":
		fmt.Println("Running install script...")
		time.Sleep(scriptDelay)
	case "done":
		fmt.Printf("Package %s installed\n", e.Msg)
		fmt.Printf("Import it with: import %s\n", e.ID)
	}
}
