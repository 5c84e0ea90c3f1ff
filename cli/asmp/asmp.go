package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/artteam09/asmp/internal/cli"
	"github.com/artteam09/asmp/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configDir    string
	verbose      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asmp",
		Short: "The ArtStudia package manager client",
		Long: `asmp is the ArtStudia package manager client with:
- Search: query the package server, fall back to the local cache
- Install/uninstall: record packages in a local ledger
- Tooling: inspect packages, server status, and configuration`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			logger.InitLogger(level, logger.FormatText)
		},
		Run: func(c *cobra.Command, _ []string) {
			// Bare invocation shows the banner followed by the usage text.
			cli.PrintBanner()
			_ = c.Help()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "state directory (default: ~/.asmp)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (table, json, yaml)")

	// Set up CLI pkg variables
	cli.ConfigDir = &configDir
	cli.Verbose = &verbose
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewSearchCmd(),
		cli.NewInstallCmd(),
		cli.NewUninstallCmd(),
		cli.NewListCmd(),
		cli.NewInfoCmd(),
		cli.NewServerStatusCmd(),
		cli.NewConfigCmd(),
		cli.NewSetServerCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
