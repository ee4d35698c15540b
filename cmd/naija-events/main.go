package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naija-events",
		Short: "Scrape, normalize, and serve Nigerian live events",
		Long: `Extracts event listings from tix.africa, normalizes them into typed
records (timestamp, price, category), deduplicates against the store, and
serves them over HTTP.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
