// -----------------------------------------------------------------------
// locus - Google Maps search CLI with CSV export
// -----------------------------------------------------------------------

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ternarybob/locus/internal/common"
)

var rootCmd = &cobra.Command{
	Use:   "locus [query]",
	Short: "Search Google Maps and export results to CSV",
	Long: `Search Google Maps for places matching a query, optionally near a
ZIP code, and export the results to a dated CSV file.`,
	Example: `  locus "coffee shops"
  locus "restaurants" --zip 10001
  locus "hiking trails" --zip 94025 --distance 10
  locus "pizza" --max-results 50 --page 2`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchZip        string
	searchDistance   int
	searchMaxResults int
	searchPage       int
	configFile       string
)

func init() {
	rootCmd.Flags().StringVar(&searchZip, "zip", "", "ZIP code to search near (e.g., 10001)")
	rootCmd.Flags().IntVar(&searchDistance, "distance", 0, "Search radius in miles from ZIP code (requires --zip)")
	rootCmd.Flags().IntVar(&searchMaxResults, "max-results", 20, "Maximum number of results to retrieve")
	rootCmd.Flags().IntVar(&searchPage, "page", 1, "Page number of results to retrieve")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration file chain. When no --config is
// given, locus.toml in the working directory is picked up if present.
func loadConfig() (*common.Config, error) {
	paths := []string{}
	if configFile != "" {
		paths = append(paths, configFile)
	} else if _, err := os.Stat("locus.toml"); err == nil {
		paths = append(paths, "locus.toml")
	}
	return common.LoadFromFiles(paths...)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			common.WriteCrashFile(r, string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "\nUnexpected error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
