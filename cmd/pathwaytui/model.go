package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GoCodeAlone/pathwaysim/internal/driver"
)

var keys = struct {
	pause key.Binding
	help  key.Binding
	quit  key.Binding
}{
	pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tuiModel is a thin bubbletea view over a live Driver: every tick it
// advances simulated time and renders the latest snapshot, making it a
// Trajectory Consumer exactly like internal/stream's websocket clients,
// just rendered to a terminal instead of pushed over the network.
type tuiModel struct {
	d        *driver.Driver
	interval time.Duration
	width    int
	height   int
	paused   bool
	showHelp bool
	tick     int
}

func newTUIModel(d *driver.Driver, interval time.Duration) tuiModel {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return tuiModel{d: d, interval: interval}
}

func (m tuiModel) Init() tea.Cmd {
	return doTick(m.interval)
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.pause):
			m.paused = !m.paused
		}
	case tickMsg:
		if !m.paused {
			m.d.TickLive()
			m.tick++
		}
		return m, doTick(m.interval)
	}
	return m, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m tuiModel) View() string {
	if m.showHelp {
		return m.helpView()
	}

	snap := m.d.Snapshot()
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("pathwaysim — t=%.1fs tick=%d", snap.TimeSeconds, m.tick)))
	if m.paused {
		b.WriteString(labelStyle.Render("  [paused]"))
	}
	b.WriteString("\n\n")

	ids := make([]string, 0, len(snap.Concentrations))
	for id := range snap.Concentrations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", id)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%10.4f\n", snap.Concentrations[id])))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause · ? help · q quit"))
	return b.String()
}

func (m tuiModel) helpView() string {
	return headerStyle.Render("pathwaytui help") + "\n\n" +
		labelStyle.Render("space") + "  pause/resume the live clock\n" +
		labelStyle.Render("?") + "      toggle this help\n" +
		labelStyle.Render("q") + "      quit\n"
}
