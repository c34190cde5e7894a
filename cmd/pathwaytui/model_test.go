package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GoCodeAlone/pathwaysim/internal/driver"
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
	"github.com/GoCodeAlone/pathwaysim/internal/schedule"
)

func testPathway(t *testing.T) pathway.Pathway {
	t.Helper()
	metabolites := []pathway.Metabolite{
		{ID: "a", Name: "A", InitialConcentration: 1.0},
	}
	p, err := pathway.Build("p", "test", "", metabolites, nil, nil)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return p
}

func TestModelPauseTogglesOnSpace(t *testing.T) {
	d := driver.NewDriver(testPathway(t), schedule.Schedule{}, driver.Config{}, nil)
	m := newTUIModel(d, 0)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	mm := updated.(tuiModel)
	if !mm.paused {
		t.Fatalf("expected paused after space key")
	}

	updated, _ = mm.Update(tea.KeyMsg{Type: tea.KeySpace})
	mm = updated.(tuiModel)
	if mm.paused {
		t.Fatalf("expected unpaused after second space key")
	}
}

func TestModelQuitReturnsQuitCmd(t *testing.T) {
	d := driver.NewDriver(testPathway(t), schedule.Schedule{}, driver.Config{}, nil)
	m := newTUIModel(d, 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a tea.Quit command on q")
	}
}

func TestModelViewRendersSnapshot(t *testing.T) {
	d := driver.NewDriver(testPathway(t), schedule.Schedule{}, driver.Config{}, nil)
	m := newTUIModel(d, 0)

	out := m.View()
	if out == "" {
		t.Fatalf("expected non-empty view output")
	}
}
