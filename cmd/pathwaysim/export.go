package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoCodeAlone/pathwaysim/internal/config"
	"github.com/GoCodeAlone/pathwaysim/internal/snapshot"
)

var exportDurationMinutes float64

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a batch simulation and write its trajectory as CSV (spec §6.5)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("duration") {
			cfg.DurationMinutes = exportDurationMinutes
		}
		if cfg.CSVOutputFile == "" {
			return fmt.Errorf("pathwaysim export: csv_output_file must be set in the run config")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		d, err := buildDriver(cfg)
		if err != nil {
			return err
		}
		traj := d.RunBatch(cfg.DurationMinutes, cfg.TickMinutes)
		if err := writeTrajectoryCSV(cfg, traj); err != nil {
			return err
		}
		fmt.Printf("wrote %d snapshots to %s\n", len(traj), cfg.CSVOutputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Float64Var(&exportDurationMinutes, "duration", 0, "simulated minutes to run (overrides the run config's duration_minutes)")
}

// writeTrajectoryCSV loads the run's pathway again (cheap relative to the
// simulation itself) purely to get metabolite declaration order for the
// CSV header, then writes trajectory per spec §6.5.
func writeTrajectoryCSV(cfg config.RunConfig, traj snapshot.Trajectory) error {
	pw, err := buildPathway(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.CSVOutputFile)
	if err != nil {
		return fmt.Errorf("pathwaysim: create csv output file: %w", err)
	}
	defer f.Close()
	return snapshot.WriteCSV(f, pw, traj)
}
