// Package layout partitions the terminal into an approximately square
// grid of pane rectangles.
package layout

import "math"

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Dims returns the grid shape for n panes: rows = ceil(sqrt(n)),
// cols = ceil(n/rows).
func Dims(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	rows = int(math.Ceil(math.Sqrt(float64(n))))
	cols = (n + rows - 1) / rows
	return rows, cols
}

// Grid splits outer into n rectangles, row-major: rows equal-height
// horizontal bands, each cut into cols equal-width cells, truncated to
// exactly n. Band and cell boundaries use proportional integer division
// so the cells tile outer exactly whatever the divisions; trailing
// cells of the last row beyond n are discarded.
func Grid(outer Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{outer}
	}

	rows, cols := Dims(n)
	rects := make([]Rect, 0, n)
	for r := 0; r < rows && len(rects) < n; r++ {
		y0 := outer.Y + (outer.Height*r)/rows
		y1 := outer.Y + (outer.Height*(r+1))/rows
		for c := 0; c < cols && len(rects) < n; c++ {
			x0 := outer.X + (outer.Width*c)/cols
			x1 := outer.X + (outer.Width*(c+1))/cols
			rects = append(rects, Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0})
		}
	}
	return rects
}
