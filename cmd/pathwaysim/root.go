// Package main is the command-line entry point for pathwaysim: a
// personalized biochemical pathway simulator. Subcommands follow
// HD220-crownet's cobra-based command tree (a persistent --config flag
// layered under per-command flags); a flat single-flag-set CLI is kept
// for the single-binary terminal viewer in cmd/pathwaytui instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pathwaysim",
	Short: "Personalized biochemical pathway simulator",
	Long: `pathwaysim builds a metabolite/enzyme/reaction pathway, personalizes
it with a user's genetics and profile, and simulates it forward with a
circadian- and schedule-aware RK4 integrator.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a TOML run configuration (spec §6.6a); overrides layer over its defaults")
}
