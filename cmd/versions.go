package cmd

import (
	"context"
	"fmt"

	"p5-manager/core/config"
	"p5-manager/core/registry"

	"github.com/spf13/cobra"
)

var versionsLimit int

// versionsCmd lists the published p5.js versions.
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List published p5.js versions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client := registry.NewClient(cfg.Registry)
		versions, err := client.Versions(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch version list: %w", err)
		}

		sorted := registry.Sorted(versions)
		if versionsLimit > 0 && len(sorted) > versionsLimit {
			sorted = sorted[:versionsLimit]
		}

		for _, v := range sorted {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().IntVar(&versionsLimit, "limit", 20, "maximum number of versions to list (0 for all)")

	RootCmd.AddCommand(versionsCmd)
}
