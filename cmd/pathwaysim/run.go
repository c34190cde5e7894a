package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runDurationMinutes float64
	runTickMinutes     float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch simulation and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("duration") {
			cfg.DurationMinutes = runDurationMinutes
		}
		if cmd.Flags().Changed("tick") {
			cfg.TickMinutes = runTickMinutes
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		d, err := buildDriver(cfg)
		if err != nil {
			return err
		}

		traj := d.RunBatch(cfg.DurationMinutes, cfg.TickMinutes)
		fmt.Printf("ran %d snapshots over %.1f simulated minutes\n", len(traj), cfg.DurationMinutes)

		if cfg.CSVOutputFile != "" {
			if err := writeTrajectoryCSV(cfg, traj); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", cfg.CSVOutputFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Float64Var(&runDurationMinutes, "duration", 0, "simulated minutes to run (overrides the run config's duration_minutes)")
	runCmd.Flags().Float64Var(&runTickMinutes, "tick", 0, "simulated minutes per tick (overrides the run config's tick_minutes)")
}
