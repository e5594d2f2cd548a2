// Package textwrap splits log lines into display-width-bounded sub-lines.
//
// Wrapping is grapheme-cluster aware: a cluster (per Unicode UAX #29,
// via rivo/uniseg) is never split across sub-lines, and widths are
// measured in terminal columns with mattn/go-runewidth, so double-width
// CJK glyphs and combining sequences wrap where they actually land on
// screen. Word-aware wrapping (muesli/reflow and friends) is the wrong
// tool here: log viewers must wrap hard at the column bound so that the
// concatenation of sub-lines reproduces the raw line byte for byte.
package textwrap

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Wrap splits line into sub-lines whose display width never exceeds
// maxWidth. A single grapheme cluster wider than maxWidth is emitted
// alone on its own sub-line rather than split mid-cluster; that
// sub-line overflows the nominal width, which the renderer tolerates.
// An empty line yields one empty sub-line so it still occupies a row.
func Wrap(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}
	if line == "" {
		return []string{""}
	}

	var (
		wrapped []string
		current []byte
		width   int
	)

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cluster := gr.Str()
		cw := runewidth.StringWidth(cluster)

		if width+cw > maxWidth {
			if len(current) > 0 {
				wrapped = append(wrapped, string(current))
				current = current[:0]
				width = 0
			}
			if cw > maxWidth {
				// Unsplittable overwide cluster: emit alone.
				wrapped = append(wrapped, cluster)
				continue
			}
		}
		current = append(current, cluster...)
		width += cw
	}

	if len(current) > 0 {
		wrapped = append(wrapped, string(current))
	}
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}
	return wrapped
}

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
