package main

import (
	"fmt"
	"os"

	"github.com/GoCodeAlone/pathwaysim/internal/config"
	"github.com/GoCodeAlone/pathwaysim/internal/driver"
	"github.com/GoCodeAlone/pathwaysim/internal/genetics"
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
	"github.com/GoCodeAlone/pathwaysim/internal/personalize"
	"github.com/GoCodeAlone/pathwaysim/internal/schedule"
)

// loadRunConfig resolves the effective RunConfig for a command: defaults,
// overlaid by --config's TOML file, following HD220-crownet's
// defaults-then-TOML layering (the global --config flag plays the role of
// its configFile). --config is required; without it this returns an error.
func loadRunConfig() (config.RunConfig, error) {
	if configFile == "" {
		return config.RunConfig{}, fmt.Errorf("pathwaysim: --config is required")
	}
	return config.LoadRunConfig(configFile)
}

// buildPathway loads and personalizes a pathway per a RunConfig: parse the
// base pathway JSON, apply genetics (if a raw genetic file is given), then
// apply the user profile (if given). No supplement stack is applied: the
// run config has no field naming one. Every stage is
// optional except the base pathway — a run config naming only a pathway
// file still produces a fully valid, unpersonalized pathway (spec L2).
func buildPathway(cfg config.RunConfig) (pathway.Pathway, error) {
	data, err := os.ReadFile(cfg.PathwayFile)
	if err != nil {
		return pathway.Pathway{}, fmt.Errorf("pathwaysim: read pathway file: %w", err)
	}
	pw, err := config.LoadPathwayJSON(data)
	if err != nil {
		return pathway.Pathway{}, fmt.Errorf("pathwaysim: load pathway: %w", err)
	}

	if cfg.RawGeneticFile != "" {
		f, err := os.Open(cfg.RawGeneticFile)
		if err != nil {
			return pathway.Pathway{}, fmt.Errorf("pathwaysim: open raw genetic file: %w", err)
		}
		defer f.Close()
		raw, err := genetics.ParseRawFile(f)
		if err != nil {
			return pathway.Pathway{}, fmt.Errorf("pathwaysim: parse raw genetic file: %w", err)
		}
		pw = genetics.ApplyGenetics(pw, genetics.NewProfile(raw))
	}

	if cfg.ProfileFile != "" {
		data, err := os.ReadFile(cfg.ProfileFile)
		if err != nil {
			return pathway.Pathway{}, fmt.Errorf("pathwaysim: read profile file: %w", err)
		}
		profile, err := config.LoadUserProfileJSON(data)
		if err != nil {
			return pathway.Pathway{}, fmt.Errorf("pathwaysim: load user profile: %w", err)
		}
		pw = personalize.ApplyProfile(pw, profile)
	}

	return pw, nil
}

// loadSchedule reads cfg's schedule file, if any; a run config naming no
// schedule file runs against an empty schedule (no meals/exercise/
// supplements/stressors fire, matching schedule.ParseJSON's own
// empty-document behavior).
func loadSchedule(cfg config.RunConfig) (schedule.Schedule, error) {
	if cfg.ScheduleFile == "" {
		return schedule.Schedule{}, nil
	}
	data, err := os.ReadFile(cfg.ScheduleFile)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("pathwaysim: read schedule file: %w", err)
	}
	return schedule.ParseJSON(data), nil
}

// buildDriver assembles a ready-to-run Driver from a RunConfig: load and
// personalize the pathway, load the schedule, and wire the driver's timing
// Config from the run config's tick/mode fields.
func buildDriver(cfg config.RunConfig) (*driver.Driver, error) {
	pw, err := buildPathway(cfg)
	if err != nil {
		return nil, err
	}
	sched, err := loadSchedule(cfg)
	if err != nil {
		return nil, err
	}

	mode := driver.Manual
	if cfg.Mode == "live" {
		mode = driver.Live
	}
	dcfg := driver.Config{
		Mode:                    mode,
		SimMinutesPerRealSecond: cfg.SimMinutesPerRealSecond,
		OutputInterval:          cfg.OutputIntervalS,
		StartMinuteOfDay:        cfg.StartMinuteOfDay,
	}
	return driver.NewDriver(pw, sched, dcfg, nil), nil
}
