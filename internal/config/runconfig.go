package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RunConfig is the top-level TOML run configuration (spec §6.6a): which
// pathway/schedule/genetic-profile files to load and how long and how
// finely to simulate. Grounded on HD220-crownet's defaults-then-TOML-
// then-flags layering (cmd/sim.go's toml.DecodeFile call over an
// already-defaulted AppConfig) and its Validate() error style.
type RunConfig struct {
	PathwayFile    string `toml:"pathway_file"`
	ScheduleFile   string `toml:"schedule_file"`
	RawGeneticFile string `toml:"raw_genetic_file"`
	ProfileFile    string `toml:"profile_file"`

	DurationMinutes  float64 `toml:"duration_minutes"`
	TickMinutes      float64 `toml:"tick_minutes"`
	OutputIntervalS  float64 `toml:"output_interval_seconds"`
	StartMinuteOfDay float64 `toml:"start_minute_of_day"`

	Mode                    string  `toml:"mode"` // "manual" or "live"
	SimMinutesPerRealSecond float64 `toml:"sim_minutes_per_real_second"`

	CSVOutputFile string `toml:"csv_output_file"`
}

// DefaultRunConfig returns sensible defaults for every field, the
// starting point a TOML file's fields overlay.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		DurationMinutes:         1440,
		TickMinutes:             1,
		OutputIntervalS:         60,
		StartMinuteOfDay:        0,
		Mode:                    "manual",
		SimMinutesPerRealSecond: 1,
	}
}

// LoadRunConfig reads path as TOML over DefaultRunConfig, then validates
// the merged result.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: decode run config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate checks the run configuration for internally consistent values.
func (c RunConfig) Validate() error {
	if c.PathwayFile == "" {
		return fmt.Errorf("config: pathway_file must be specified")
	}
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("config: duration_minutes must be positive, got %v", c.DurationMinutes)
	}
	if c.TickMinutes <= 0 {
		return fmt.Errorf("config: tick_minutes must be positive, got %v", c.TickMinutes)
	}
	if c.OutputIntervalS <= 0 {
		return fmt.Errorf("config: output_interval_seconds must be positive, got %v", c.OutputIntervalS)
	}
	if c.StartMinuteOfDay < 0 || c.StartMinuteOfDay >= 1440 {
		return fmt.Errorf("config: start_minute_of_day must be in [0, 1440), got %v", c.StartMinuteOfDay)
	}
	switch c.Mode {
	case "manual", "live":
	default:
		return fmt.Errorf("config: mode must be \"manual\" or \"live\", got %q", c.Mode)
	}
	if c.SimMinutesPerRealSecond <= 0 {
		return fmt.Errorf("config: sim_minutes_per_real_second must be positive, got %v", c.SimMinutesPerRealSecond)
	}
	return nil
}
