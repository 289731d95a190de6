// Package tui is an interactive terminal tuner for the gain designer.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/encos-robotics/jointpd/internal/catalog"
	"github.com/encos-robotics/jointpd/internal/config"
	"github.com/encos-robotics/jointpd/internal/design"
)

const historyCapacity = 120

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	limitedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var fieldNames = []string{"fn (Hz)", "zeta", "kp max", "kd max"}

// Model drives the interactive tuner: tab selects a field, up/down
// scale it, and every change re-runs the synthesis.
type Model struct {
	cat      *catalog.Catalog
	models   []string
	modelIdx int

	values   [4]float64 // fn, zeta, kpMax, kdMax
	initial  [4]float64
	selected int

	res     design.Result
	err     error
	history []float64
}

func NewModel(cat *catalog.Catalog, cfg *config.Config) Model {
	models := cat.Models()
	idx := 0
	for i, model := range models {
		if model == cfg.Actuator {
			idx = i
			break
		}
	}

	m := Model{
		cat:      cat,
		models:   models,
		modelIdx: idx,
		values:   [4]float64{cfg.Fn, cfg.Zeta, cfg.KpMax, cfg.KdMax},
		history:  make([]float64, 0, historyCapacity),
	}
	m.initial = m.values
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(fieldNames)
		case "shift+tab":
			m.selected = (m.selected + len(fieldNames) - 1) % len(fieldNames)
		case "up", "k":
			m.adjust(1.05)
		case "down", "j":
			m.adjust(0.95)
		case "a":
			m.modelIdx = (m.modelIdx + 1) % len(m.models)
			m.recompute()
		case "A":
			m.modelIdx = (m.modelIdx + len(m.models) - 1) % len(m.models)
			m.recompute()
		case "r":
			m.values = m.initial
			m.history = m.history[:0]
			m.recompute()
		}
	}
	return m, nil
}

func (m *Model) adjust(factor float64) {
	m.values[m.selected] *= factor
	m.recompute()
}

func (m *Model) recompute() {
	spec, _ := m.cat.Get(m.models[m.modelIdx])

	cfg := config.Config{
		Fn:    m.values[0],
		Zeta:  m.values[1],
		KpMax: m.values[2],
		KdMax: m.values[3],
	}
	m.res, m.err = design.Synthesize(cfg.Request(spec.Inertia))
	if m.err != nil {
		return
	}

	m.history = append(m.history, m.res.FnActual)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// View renders the tuner interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("JOINT PD TUNER") + "\n")

	spec, _ := m.cat.Get(m.models[m.modelIdx])

	var inputs strings.Builder
	inputs.WriteString(labelStyle.Render("actuator") + valueStyle.Render(fmt.Sprintf("%s  (J=%.7f kg·m²)", spec.Model, spec.Inertia)) + "\n")
	for i, name := range fieldNames {
		line := fmt.Sprintf("%.4f", m.values[i])
		if i == m.selected {
			inputs.WriteString(labelStyle.Render(name) + activeParamStyle.Render("› "+line) + "\n")
		} else {
			inputs.WriteString(labelStyle.Render(name) + valueStyle.Render("  "+line) + "\n")
		}
	}
	s.WriteString(panelStyle.Render(inputs.String()) + "\n")

	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n")
		return s.String()
	}

	var results strings.Builder
	results.WriteString(labelStyle.Render("Kp") + valueStyle.Render(fmt.Sprintf("%.3f", m.res.KpActual)) + "\n")
	results.WriteString(labelStyle.Render("Kd") + valueStyle.Render(fmt.Sprintf("%.3f", m.res.KdActual)) + "\n")
	results.WriteString(labelStyle.Render("fn actual (Hz)") + valueStyle.Render(fmt.Sprintf("%.3f", m.res.FnActual)) + "\n")
	results.WriteString(labelStyle.Render("zeta actual") + valueStyle.Render(fmt.Sprintf("%.3f", m.res.ZetaActual)) + "\n")
	results.WriteString(labelStyle.Render("rise time") + valueStyle.Render(timeLabel(m.res.TrActual)) + "\n")
	results.WriteString(labelStyle.Render("settling time") + valueStyle.Render(timeLabel(m.res.TsActual)) + "\n")
	s.WriteString(panelStyle.Render(results.String()) + "\n")

	if m.res.Limited() {
		s.WriteString(limitedStyle.Render(fmt.Sprintf("⚠ gain caps active: %.2f Hz requested, %.2f Hz achievable", m.res.FnDes, m.res.FnActual)) + "\n")
	} else {
		s.WriteString(okStyle.Render("✓ target achievable within gain caps") + "\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("achieved fn (Hz)"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	s.WriteString(helpStyle.Render("tab: field  ↑/↓: adjust  a/A: actuator  r: reset  q: quit"))
	return s.String()
}

func timeLabel(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "unbounded"
	}
	return fmt.Sprintf("%.1f ms", seconds*1000)
}

// Run starts the tuner.
func Run(cat *catalog.Catalog, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cat, cfg))
	_, err := p.Run()
	return err
}
