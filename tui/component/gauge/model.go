// Package gauge hosts a progress bar inside a Bubble Tea program.
package gauge

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/gauge/tui"
)

type Model struct {
	opts    Options
	paused  bool
	lastErr error
	width   int

	// tickID identifies the live tick chain; ticking is false once that
	// chain has stopped.
	tickID  int
	ticking bool
}

func New(opts Options) Model {
	return Model{opts: opts}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case startMsg:
		m.lastErr = m.opts.Bar.Render()
		return m.restartTicks()

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		if m.paused || m.opts.Bar.Done() {
			m.ticking = false
			return m, nil
		}
		m.lastErr = m.opts.Bar.Increment(m.opts.step())
		return m, m.scheduleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "p", " ":
		m.paused = !m.paused
		return m.resumeTicks()

	case "+", "right":
		m.lastErr = m.opts.Bar.Increment(m.opts.step())
		return m.resumeTicks()

	case "-", "left":
		m.lastErr = m.opts.Bar.Increment(-m.opts.step())
		return m.resumeTicks()

	case "r":
		m.lastErr = m.opts.Bar.SetCurrent(0)
		return m.resumeTicks()
	}

	return m, nil
}

func (m Model) View() string {
	title := m.opts.Title
	if title == "" {
		title = "gauge"
	}

	footer := fmt.Sprintf("%s  elapsed %s  [p] pause  [+/-] step  [r] reset  [q] quit",
		m.state(), tui.FormatDuration(m.opts.Bar.Elapsed()))

	parts := []string{
		titleStyle.Render(title),
		panelStyle.Render(m.opts.Buffer.Last()),
		footerStyle.Render(footer),
	}
	if m.lastErr != nil {
		parts = append(parts, errorStyle.Render("render failed: "+m.lastErr.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// Paused reports whether automatic stepping is paused.
func (m Model) Paused() bool {
	return m.paused
}

func (m Model) state() string {
	switch {
	case m.paused:
		return "paused"
	case m.opts.Bar.Done():
		return "done"
	default:
		return "running"
	}
}

// resumeTicks starts a tick chain when stepping should continue and none
// is live.
func (m Model) resumeTicks() (tea.Model, tea.Cmd) {
	if m.paused || m.ticking || m.opts.Bar.Done() {
		return m, nil
	}
	return m.restartTicks()
}

// restartTicks supersedes any pending tick chain with a new one.
func (m Model) restartTicks() (tea.Model, tea.Cmd) {
	m.tickID++
	m.ticking = true
	return m, m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.opts.interval(), func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
