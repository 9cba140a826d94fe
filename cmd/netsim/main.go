// Command netsim loads a declarative network model and configuration,
// runs the simulation engine, and reports the outcome.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "netsim",
	Short:   "Layer-3 IP/MPLS traffic placement simulator",
	Long:    `netsim simulates LSP placement and IP demand routing over a declarative network model, for capacity planning and failure-scenario analysis.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to engine YAML config (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
