// Package highlight converts raw log lines into styled segments using
// an ordered list of regex rules.
package highlight

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Rule pairs a compiled pattern with the style applied to its matches.
// Rules are immutable after construction.
type Rule struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// Segment is a run of text with an optional style. Matched is false for
// the unstyled gaps between rule matches.
type Segment struct {
	Text    string
	Style   lipgloss.Style
	Matched bool
}

// Engine formats lines with a fixed rule set. It is read-only after
// construction and safe to share across every pane and render call.
type Engine struct {
	rules []Rule
}

// New compiles the given (pattern, style) pairs into an engine.
func New(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// MustRule compiles pattern or panics. Rule sets are built at startup
// from literals, so a bad pattern is a programming error.
func MustRule(pattern string, style lipgloss.Style) Rule {
	return Rule{pattern: regexp.MustCompile(pattern), style: style}
}

type match struct {
	start, end int
	style      lipgloss.Style
}

// Format runs every rule against line, sorts the matches by start
// offset, and sweeps left to right emitting unstyled gap segments
// between styled match segments.
//
// Overlap policy: first match wins. A match starting before the end of
// the previously emitted one is dropped entirely, so the returned
// segments always partition the line without overlap; for equal starts
// the longer match is preferred so e.g. a braced token is not shadowed
// by a shorter rule matching its first characters.
func (e *Engine) Format(line string) []Segment {
	var matches []match
	for _, rule := range e.rules {
		for _, loc := range rule.pattern.FindAllStringIndex(line, -1) {
			matches = append(matches, match{start: loc[0], end: loc[1], style: rule.style})
		}
	}

	if len(matches) == 0 {
		return []Segment{{Text: line}}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	var segments []Segment
	last := 0
	for _, m := range matches {
		if m.start < last {
			continue
		}
		if m.start > last {
			segments = append(segments, Segment{Text: line[last:m.start]})
		}
		segments = append(segments, Segment{Text: line[m.start:m.end], Style: m.style, Matched: true})
		last = m.end
	}
	if last < len(line) {
		segments = append(segments, Segment{Text: line[last:]})
	}
	return segments
}

// Render returns line with every matched segment styled.
func (e *Engine) Render(line string) string {
	segments := e.Format(line)
	if len(segments) == 1 && !segments[0].Matched {
		return segments[0].Text
	}
	var out []byte
	for _, seg := range segments {
		if seg.Matched {
			out = append(out, seg.Style.Render(seg.Text)...)
		} else {
			out = append(out, seg.Text...)
		}
	}
	return string(out)
}
