package layout

import "testing"

func TestDims(t *testing.T) {
	cases := []struct {
		n, rows, cols int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 2},
		{5, 3, 2},
		{6, 3, 2},
		{7, 3, 3},
		{9, 3, 3},
		{10, 4, 3},
		{12, 4, 3},
	}
	for _, tc := range cases {
		rows, cols := Dims(tc.n)
		if rows != tc.rows || cols != tc.cols {
			t.Fatalf("Dims(%d) = (%d, %d), want (%d, %d)", tc.n, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestGridTruncatesToN(t *testing.T) {
	outer := Rect{Width: 100, Height: 40}
	for n := 1; n <= 16; n++ {
		rects := Grid(outer, n)
		if len(rects) != n {
			t.Fatalf("Grid(n=%d) returned %d rects", n, len(rects))
		}
	}
}

func TestGridSinglePaneFillsOuter(t *testing.T) {
	outer := Rect{X: 3, Y: 2, Width: 77, Height: 21}
	rects := Grid(outer, 1)
	if rects[0] != outer {
		t.Fatalf("Grid(n=1) = %+v, want %+v", rects[0], outer)
	}
}

// Full grids (n == rows*cols) must tile the outer rectangle exactly:
// cells cover it completely with no overlap, whatever the rounding.
func TestGridTilesExactly(t *testing.T) {
	outers := []Rect{
		{Width: 80, Height: 24},
		{Width: 81, Height: 25},
		{X: 5, Y: 7, Width: 133, Height: 41},
		{Width: 7, Height: 5},
	}
	for _, outer := range outers {
		for _, n := range []int{1, 4, 9, 6} {
			rects := Grid(outer, n)

			covered := make(map[[2]int]int)
			for _, r := range rects {
				if r.X < outer.X || r.Y < outer.Y ||
					r.X+r.Width > outer.X+outer.Width ||
					r.Y+r.Height > outer.Y+outer.Height {
					t.Fatalf("rect %+v escapes outer %+v (n=%d)", r, outer, n)
				}
				for y := r.Y; y < r.Y+r.Height; y++ {
					for x := r.X; x < r.X+r.Width; x++ {
						covered[[2]int{x, y}]++
					}
				}
			}
			for cell, count := range covered {
				if count > 1 {
					t.Fatalf("cell %v covered %d times (outer=%+v n=%d)", cell, count, outer, n)
				}
			}

			rows, cols := Dims(n)
			if n == rows*cols {
				if got, want := len(covered), outer.Width*outer.Height; got != want {
					t.Fatalf("full grid covers %d cells of %d (outer=%+v n=%d)", got, want, outer, n)
				}
			}
		}
	}
}

func TestGridRowMajorOrder(t *testing.T) {
	outer := Rect{Width: 90, Height: 30}
	rects := Grid(outer, 4) // 2x2
	if rects[0].Y != rects[1].Y {
		t.Fatalf("first two rects not in the same row: %+v %+v", rects[0], rects[1])
	}
	if rects[1].X <= rects[0].X {
		t.Fatalf("second rect not right of first: %+v %+v", rects[0], rects[1])
	}
	if rects[2].Y <= rects[0].Y {
		t.Fatalf("third rect not below first: %+v %+v", rects[0], rects[2])
	}
}

func TestGridZeroPanes(t *testing.T) {
	if rects := Grid(Rect{Width: 10, Height: 10}, 0); rects != nil {
		t.Fatalf("Grid(n=0) = %v, want nil", rects)
	}
}
