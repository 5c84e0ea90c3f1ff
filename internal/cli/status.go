package cli

import (
	"context"
	"fmt"

	"github.com/artteam09/asmp/internal/logger"
	"github.com/artteam09/asmp/pkg/registry"
	"github.com/spf13/cobra"
)

// NewServerStatusCmd creates the server-status command.
func NewServerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server-status",
		Short: "Check whether the package server is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServerStatus(cmd.Context())
		},
	}
}

func runServerStatus(ctx context.Context) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	client, cfg, err := loadClientAndConfig(registry.Hooks{})
	if err != nil {
		return err
	}

	info := client.Ping(ctx)
	if info == nil {
		return fmt.Errorf("server %s is not reachable", cfg.ServerURL)
	}

	if info.APINewerThan(registry.APIVersion) {
		logger.Warnf("Server speaks API %s, newer than this client (%s). Consider upgrading.", info.APIVersion, registry.APIVersion)
	}

	return renderServerStatus(info, cfg.ServerURL)
}
