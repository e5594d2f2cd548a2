package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the dashboard.
type Styles struct {
	Border       lipgloss.Style // pane border, unfocused
	BorderActive lipgloss.Style // pane border, selected pane
	Title        lipgloss.Style
	TitleActive  lipgloss.Style
	Connecting   lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default dark-terminal palette.
func DefaultStyles() Styles {
	var (
		border = lipgloss.Color("8")
		accent = lipgloss.Color("3")
		muted  = lipgloss.Color("7")
		danger = lipgloss.Color("1")
	)
	return Styles{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
		BorderActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Title: lipgloss.NewStyle().
			Foreground(muted),
		TitleActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Connecting: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(border),
	}
}
