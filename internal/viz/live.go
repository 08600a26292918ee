package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/rift"
)

const (
	graphWidth  = 90
	graphHeight = 18
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type TickMsg time.Time

// Model is a Bubble Tea model that steps an extender live and draws the
// evolving cross-section of the first grid row.
type Model struct {
	ext       *rift.Extender
	dt        float64
	duration  float64
	t         float64
	frameRate int
	running   bool
	err       error
}

func NewModel(ext *rift.Extender, dt, duration float64, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		ext:       ext,
		dt:        dt,
		duration:  duration,
		frameRate: frameRate,
		running:   true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.dt *= 2
		case "-", "_":
			m.dt /= 2
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil && m.t < m.duration {
			if err := m.ext.RunOneStep(m.dt); err != nil {
				m.err = err
			} else {
				m.t += m.dt
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	s := headerStyle.Render("riftsim - listric fault extension") + "\n"

	g := m.ext.Grid()
	if elev, ok := g.Field(grid.FieldElevation); ok {
		row := elev
		if g.Rows() > 1 {
			row = elev[:g.Cols()]
		}
		s += graphStyle.Render(PlotProfile(row, graphWidth, graphHeight, "elevation cross-section"))
		s += "\n"
	}

	stat := func(label string, format string, args ...interface{}) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...)) + "\n"
	}
	s += "\n"
	s += stat("time", "%.0f", m.t)
	s += stat("dt", "%.0f", m.dt)
	s += stat("offset", "%.1f / %.1f", m.ext.CumulativeOffset(), m.ext.CellWidth())
	s += stat("hangingwall edge", "%.1f", m.ext.HangingwallEdge())
	s += stat("shifts", "%d", m.ext.ShiftCount())

	if !m.running {
		s += pausedStyle.Render("PAUSED") + "\n"
	}
	if m.err != nil {
		s += errStyle.Render("error: "+m.err.Error()) + "\n"
	}

	s += helpStyle.Render("space pause | +/- timestep | q quit")
	return s
}

// RunLive starts the live viewer and blocks until it exits.
func RunLive(ext *rift.Extender, dt, duration float64, frameRate int) error {
	p := tea.NewProgram(NewModel(ext, dt, duration, frameRate))
	_, err := p.Run()
	return err
}
