// Command pathwaytui is a single-binary live terminal viewer for a
// running pathway simulation. It uses a flat flag-based CLI (a single
// set of top-level flags, no subcommand tree) since a single TUI binary
// is exactly the shape that style fits; the multi-command surface
// (run/validate/export/serve) lives in cmd/pathwaysim instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GoCodeAlone/pathwaysim/internal/config"
	"github.com/GoCodeAlone/pathwaysim/internal/driver"
	"github.com/GoCodeAlone/pathwaysim/internal/genetics"
	"github.com/GoCodeAlone/pathwaysim/internal/personalize"
	"github.com/GoCodeAlone/pathwaysim/internal/schedule"
)

func main() {
	configFile := flag.String("config", "", "path to a TOML run configuration (spec §6.6a)")
	tickMs := flag.Int("tickMs", 200, "wall-clock milliseconds between viewer ticks")
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "pathwaytui: -config is required")
		os.Exit(1)
	}

	cfg, err := config.LoadRunConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathwaytui:", err)
		os.Exit(1)
	}

	d, err := buildDriver(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathwaytui:", err)
		os.Exit(1)
	}

	model := newTUIModel(d, time.Duration(*tickMs)*time.Millisecond)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "pathwaytui:", err)
		os.Exit(1)
	}
}

// buildDriver mirrors cmd/pathwaysim's setup.go, kept as its own small
// copy here since pathwaytui is a standalone binary: load and
// personalize the pathway, load the schedule, wire the driver in Live
// mode paced by the run config's sim_minutes_per_real_second.
func buildDriver(cfg config.RunConfig) (*driver.Driver, error) {
	data, err := os.ReadFile(cfg.PathwayFile)
	if err != nil {
		return nil, fmt.Errorf("read pathway file: %w", err)
	}
	pw, err := config.LoadPathwayJSON(data)
	if err != nil {
		return nil, fmt.Errorf("load pathway: %w", err)
	}

	if cfg.RawGeneticFile != "" {
		f, err := os.Open(cfg.RawGeneticFile)
		if err != nil {
			return nil, fmt.Errorf("open raw genetic file: %w", err)
		}
		defer f.Close()
		raw, err := genetics.ParseRawFile(f)
		if err != nil {
			return nil, fmt.Errorf("parse raw genetic file: %w", err)
		}
		pw = genetics.ApplyGenetics(pw, genetics.NewProfile(raw))
	}

	if cfg.ProfileFile != "" {
		data, err := os.ReadFile(cfg.ProfileFile)
		if err != nil {
			return nil, fmt.Errorf("read profile file: %w", err)
		}
		profile, err := config.LoadUserProfileJSON(data)
		if err != nil {
			return nil, fmt.Errorf("load user profile: %w", err)
		}
		pw = personalize.ApplyProfile(pw, profile)
	}

	var sched schedule.Schedule
	if cfg.ScheduleFile != "" {
		data, err := os.ReadFile(cfg.ScheduleFile)
		if err != nil {
			return nil, fmt.Errorf("read schedule file: %w", err)
		}
		sched = schedule.ParseJSON(data)
	}

	dcfg := driver.Config{
		Mode:                    driver.Live,
		SimMinutesPerRealSecond: cfg.SimMinutesPerRealSecond,
		StartMinuteOfDay:        cfg.StartMinuteOfDay,
	}
	return driver.NewDriver(pw, sched, dcfg, nil), nil
}
