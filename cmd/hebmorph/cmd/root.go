package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/code972/hebmorph/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hebmorph",
	Short: "Hebrew analysis dictionary tooling",
	Long:  "Resolve, inspect and exercise the Hebrew morphology dictionary used by the analysis components.",
}

// loadConfig reads process configuration, exiting on malformed input.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
}
