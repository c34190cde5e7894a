package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a pathway and schedule and report any build/parse errors without simulating",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		pw, err := buildPathway(cfg)
		if err != nil {
			return err
		}
		sched, err := loadSchedule(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("pathway %q: %d metabolites, %d enzymes, %d reactions\n",
			pw.ID, len(pw.Metabolites), len(pw.Enzymes), len(pw.Reactions))
		fmt.Printf("schedule: %d events\n", len(sched.Events))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
