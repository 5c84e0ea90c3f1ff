package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/artteam09/asmp/pkg/config"
	"github.com/artteam09/asmp/pkg/model"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the --output flag.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func outputFormat() string {
	if OutputFormat != nil && *OutputFormat != "" {
		return *OutputFormat
	}
	return FormatTable
}

// validateOutputFormat rejects unknown --output values before any work
// happens.
func validateOutputFormat() error {
	switch outputFormat() {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected table, json or yaml)", outputFormat())
	}
}

// renderValue encodes v to stdout as JSON or YAML.
func renderValue(v any) error {
	switch outputFormat() {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	}
	return nil
}

// renderPackages prints search results in the requested format, or
// emptyMsg when there is nothing to show.
func renderPackages(records []*model.PackageRecord, emptyMsg string) error {
	if outputFormat() != FormatTable {
		if records == nil {
			records = []*model.PackageRecord{}
		}
		return renderValue(records)
	}

	if len(records) == 0 {
		fmt.Println(emptyMsg)
		return nil
	}

	fmt.Printf("%-30s %-15s %-10s %s\n", "PACKAGE NAME", "VERSION", "TYPE", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", 90))
	for _, rec := range records {
		fmt.Printf("%-30s %-15s %-10s %s\n",
			rec.Name,
			rec.Version,
			rec.Type,
			truncate(rec.Description, MaxDescriptionLength))
	}
	fmt.Printf("\n%d package(s)\n", len(records))

	return nil
}

// renderInstalled prints ledger entries with their install stamp.
func renderInstalled(records []*model.PackageRecord) error {
	if outputFormat() != FormatTable {
		if records == nil {
			records = []*model.PackageRecord{}
		}
		return renderValue(records)
	}

	if len(records) == 0 {
		fmt.Println("No packages installed")
		return nil
	}

	fmt.Printf("%-30s %-15s %-20s %s\n", "PACKAGE NAME", "VERSION", "INSTALLED", "BY")
	fmt.Println(strings.Repeat("-", 75))
	for _, rec := range records {
		installed := "unknown"
		if rec.InstalledAt > 0 {
			installed = time.Unix(rec.InstalledAt, 0).Format("2006-01-02 15:04")
		}
		fmt.Printf("%-30s %-15s %-20s %s\n", rec.Name, rec.Version, installed, rec.InstalledBy)
	}

	return nil
}

// renderPackageDetails prints the full record of a single package.
func renderPackageDetails(rec *model.PackageRecord) error {
	if outputFormat() != FormatTable {
		return renderValue(rec)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", rec.Name)
	_, _ = fmt.Fprintf(w, "Version:\t%s\n", rec.Version)
	_, _ = fmt.Fprintf(w, "Description:\t%s\n", rec.Description)
	_, _ = fmt.Fprintf(w, "Type:\t%s\n", rec.Type)
	_, _ = fmt.Fprintf(w, "License:\t%s\n", rec.License)
	_, _ = fmt.Fprintf(w, "Author:\t%s\n", rec.Author)
	if len(rec.Dependencies) > 0 {
		_, _ = fmt.Fprintf(w, "Dependencies:\t%s\n", strings.Join(rec.Dependencies, ", "))
	}
	if len(rec.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(rec.Tags, ", "))
	}
	return w.Flush()
}

// renderServerStatus prints the reachable-server report.
func renderServerStatus(info *model.ServerInfo, serverURL string) error {
	if outputFormat() != FormatTable {
		return renderValue(info)
	}

	fmt.Println("Server is reachable")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", info.Name)
	_, _ = fmt.Fprintf(w, "API version:\t%s\n", info.APIVersion)
	_, _ = fmt.Fprintf(w, "Packages:\t%d\n", info.PackagesCount)
	_, _ = fmt.Fprintf(w, "Uptime:\t%s\n", info.Uptime)
	_, _ = fmt.Fprintf(w, "URL:\t%s\n", serverURL)
	return w.Flush()
}

// renderConfig prints the client configuration.
func renderConfig(cfg *config.ClientConfig, dir string) error {
	if outputFormat() != FormatTable {
		return renderValue(cfg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(w, "SETTING\tVALUE")
	_, _ = fmt.Fprintln(w, "-------\t-----")
	_, _ = fmt.Fprintf(w, "client_version\t%s\n", cfg.ClientVersion)
	_, _ = fmt.Fprintf(w, "server_url\t%s\n", cfg.ServerURL)
	_, _ = fmt.Fprintf(w, "auto_update\t%t\n", cfg.AutoUpdate)
	_, _ = fmt.Fprintf(w, "timeout\t%ds\n", cfg.TimeoutSeconds)
	_, _ = fmt.Fprintf(w, "config_dir\t%s\n", dir)
	return w.Flush()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
