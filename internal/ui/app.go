package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/happy-shine/rogger/internal/highlight"
	"github.com/happy-shine/rogger/internal/layout"
	"github.com/happy-shine/rogger/internal/session"
)

// redrawInterval is the steady render cadence. New log lines become
// visible on the next tick even with no input.
const redrawInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model is the root Bubble Tea model: the grid of panes, the selection,
// and the maximize flag. Sessions ingest concurrently; the model only
// ever reads their buffers and statuses and owns the scroll state's
// manual-mode side.
type Model struct {
	sessions []*session.Session
	engine   *highlight.Engine
	styles   Styles
	keys     keyMap
	help     help.Model

	selected  int
	maximized bool

	width  int
	height int
	ready  bool
}

// New builds the dashboard model over the given sessions. The highlight
// engine is shared read-only across every pane.
func New(sessions []*session.Session, engine *highlight.Engine) Model {
	return Model{
		sessions: sessions,
		engine:   engine,
		styles:   DefaultStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = m.width > 0 && m.height > 0
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Maximize):
		m.maximized = !m.maximized
		// Toggling always resumes tail-following on the active pane.
		m.active().View().Follow()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		s := m.active()
		s.Buffer().Clear()
		s.View().Reset()
		s.View().Follow()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().LineUp(total, height) })
		} else {
			m.moveSelection(0, -1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().LineDown(total, height) })
		} else {
			m.moveSelection(0, 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if !m.maximized {
			m.moveSelection(-1, 0)
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if !m.maximized {
			m.moveSelection(1, 0)
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().PageUp(total, height) })
		}
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().PageDown(total, height) })
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().Top(total, height) })
		}
		return m, nil

	case key.Matches(msg, m.keys.End):
		if m.maximized {
			m.scrollActive(func(total, height int) { m.active().View().Bottom(total, height) })
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) active() *session.Session {
	return m.sessions[m.selected]
}

// scrollActive resolves the maximized pane's wrapped extent and pane
// height, settles the position for the current frame, then applies the
// navigation move against it.
func (m *Model) scrollActive(move func(total, height int)) {
	contentW, contentH := paneContentSize(m.outerRect())
	total := wrappedTotal(m.active().Buffer().Snapshot(), contentW)
	m.active().View().Reconcile(total, contentH)
	move(total, contentH)
}

// moveSelection shifts pane focus within the grid, clamping at the
// edges: moving left in the first column or down past the last pane
// keeps the current selection.
func (m *Model) moveSelection(dx, dy int) {
	n := len(m.sessions)
	_, cols := layout.Dims(n)
	if cols == 0 {
		return
	}

	row := m.selected / cols
	col := m.selected % cols

	col += dx
	row += dy

	if col < 0 || row < 0 {
		return
	}
	next := row*cols + col
	if col >= cols || next >= n {
		return
	}
	m.selected = next
}

func (m Model) outerRect() layout.Rect {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	return layout.Rect{X: 0, Y: 0, Width: m.width, Height: m.height - helpHeight}
}

func (m Model) View() string {
	if !m.ready || len(m.sessions) == 0 {
		return "loading..."
	}

	outer := m.outerRect()

	var grid string
	if m.maximized {
		grid = m.renderPane(m.selected, outer, true)
	} else {
		rects := layout.Grid(outer, len(m.sessions))
		var rows []string
		var rowPanes []string
		rowY := rects[0].Y
		for i, rect := range rects {
			if rect.Y != rowY {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowPanes...))
				rowPanes = rowPanes[:0]
				rowY = rect.Y
			}
			rowPanes = append(rowPanes, m.renderPane(i, rect, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowPanes...))
		grid = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, grid, m.styles.Help.Render(m.help.View(m.keys)))
}
