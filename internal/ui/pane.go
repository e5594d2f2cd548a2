package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/happy-shine/rogger/internal/layout"
	"github.com/happy-shine/rogger/internal/session"
	"github.com/happy-shine/rogger/internal/textwrap"
)

// Pane chrome: one title row above the box, plus the box border.
const (
	paneBorderWidth  = 2
	paneChromeHeight = 3
)

// paneContentSize returns the columns and rows available for wrapped
// log content inside a pane of the given rectangle.
func paneContentSize(rect layout.Rect) (w, h int) {
	w = rect.Width - paneBorderWidth
	h = rect.Height - paneChromeHeight
	if w < 1 {
		w = 1
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// wrappedTotal counts the wrapped display lines of lines at width.
func wrappedTotal(lines []string, width int) int {
	total := 0
	for _, line := range lines {
		total += len(textwrap.Wrap(line, width))
	}
	return total
}

// wrapAll flattens lines into wrapped display lines at width. Wrap
// boundaries depend on the pane width, so this runs every frame; they
// are never cached across resizes or maximize toggles.
func wrapAll(lines []string, width int) []string {
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, textwrap.Wrap(line, width)...)
	}
	return wrapped
}

// renderPane draws one source's pane at rect: a title row with the
// scroll indicator, then a bordered box of highlighted wrapped lines.
func (m Model) renderPane(i int, rect layout.Rect, active bool) string {
	s := m.sessions[i]
	contentW, contentH := paneContentSize(rect)

	wrapped := wrapAll(s.Buffer().Snapshot(), contentW)
	total := len(wrapped)
	scroll := s.View().Reconcile(total, contentH)

	end := scroll + contentH
	if end > total {
		end = total
	}
	visible := wrapped[scroll:end]

	// Highlight only the slice that actually lands on screen.
	rendered := make([]string, len(visible))
	for j, line := range visible {
		rendered[j] = m.engine.Render(line)
	}

	status := s.Status()
	switch status.State {
	case session.StateConnecting:
		if len(rendered) == 0 && contentH > 0 {
			rendered = append(rendered, m.styles.Connecting.Render("connecting..."))
		}
	case session.StateError:
		// The failure must stay visible at any scroll position: it
		// claims the last visible row when the pane is full.
		errLine := m.styles.Error.Render(truncate.String(status.Message, uint(contentW)))
		if len(rendered) < contentH {
			rendered = append(rendered, errLine)
		} else if contentH > 0 {
			rendered[contentH-1] = errLine
		}
	}

	border := m.styles.Border
	titleStyle := m.styles.Title
	if active {
		border = m.styles.BorderActive
		titleStyle = m.styles.TitleActive
	}

	title := fmt.Sprintf("%s (%d/%d)", s.Name(), scroll, total)
	if status.State != session.StateConnected {
		title += " · " + status.State.String()
	}
	title = titleStyle.Render(truncate.String(title, uint(rect.Width)))

	box := border.
		Width(contentW).
		Height(contentH).
		Render(strings.Join(rendered, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}
