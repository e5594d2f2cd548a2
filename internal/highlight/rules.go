package highlight

import "github.com/charmbracelet/lipgloss"

// Patterns for the built-in rule set. Exported for tests and for the
// title-bar legend.
const (
	TimestampPattern = `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d{3})?(?:,\d{3})?`
	WarnPattern      = `WARNING|WARN`
	ErrorPattern     = `ERROR|FATAL|FAILURE`
	BracePattern     = `\{.*?\}`
	InfoPattern      = `INFO`
	IPv4Pattern      = `\b(?:\d{1,3}\.){3}\d{1,3}\b`
)

// DefaultRules returns the built-in log highlighting rules: timestamps
// green, warnings yellow, errors red, braced tokens cyan, INFO blue,
// IPv4 literals magenta.
func DefaultRules() []Rule {
	return []Rule{
		MustRule(TimestampPattern, lipgloss.NewStyle().Foreground(lipgloss.Color("2"))),
		MustRule(WarnPattern, lipgloss.NewStyle().Foreground(lipgloss.Color("3"))),
		MustRule(ErrorPattern, lipgloss.NewStyle().Foreground(lipgloss.Color("1"))),
		MustRule(BracePattern, lipgloss.NewStyle().Foreground(lipgloss.Color("6"))),
		MustRule(InfoPattern, lipgloss.NewStyle().Foreground(lipgloss.Color("4"))),
		MustRule(IPv4Pattern, lipgloss.NewStyle().Foreground(lipgloss.Color("5"))),
	}
}

// Default returns an engine with the built-in rule set.
func Default() *Engine {
	return New(DefaultRules()...)
}
