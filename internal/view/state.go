// Package view tracks per-source scroll state and reconciles tail
// auto-follow with user-initiated scrolling.
package view

import "sync"

// State is one pane's scroll position, in wrapped display lines, plus
// whether the user has taken over scrolling. It is shared between the
// source's ingestion goroutine (which nudges it toward the tail on new
// lines) and the render loop (which reconciles it against the real
// wrapped line count every frame). All access goes through the mutex.
type State struct {
	mu           sync.Mutex
	scroll       int
	userScrolled bool
}

// Scroll returns the index of the topmost visible wrapped line.
func (s *State) Scroll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// UserScrolled reports whether the pane is in manual scroll mode.
func (s *State) UserScrolled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userScrolled
}

// Advance nudges the position toward the new tail after a line arrives.
// In manual mode it does nothing; the exact position is settled by
// Reconcile once the renderer knows the wrapped line count.
func (s *State) Advance(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.userScrolled {
		s.scroll = maxOffset(total, 1)
	}
}

// Reconcile enforces the scroll invariants for the current frame and
// returns the settled position. In auto-follow the position is forced
// to the tail; in manual mode it is clamped to the valid range. Both
// bounds saturate at zero when the whole buffer fits the pane.
func (s *State) Reconcile(total, height int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := maxOffset(total, height)
	if !s.userScrolled || s.scroll > limit {
		s.scroll = limit
	}
	return s.scroll
}

// LineUp scrolls one line toward the top.
func (s *State) LineUp(total, height int) {
	s.scrollTo(func(pos, _ int) int { return pos - 1 }, total, height)
}

// LineDown scrolls one line toward the tail.
func (s *State) LineDown(total, height int) {
	s.scrollTo(func(pos, _ int) int { return pos + 1 }, total, height)
}

// PageUp scrolls one pane height toward the top.
func (s *State) PageUp(total, height int) {
	s.scrollTo(func(pos, page int) int { return pos - page }, total, height)
}

// PageDown scrolls one pane height toward the tail.
func (s *State) PageDown(total, height int) {
	s.scrollTo(func(pos, page int) int { return pos + page }, total, height)
}

// Top jumps to the first wrapped line.
func (s *State) Top(total, height int) {
	s.scrollTo(func(int, int) int { return 0 }, total, height)
}

// Bottom jumps to the tail.
func (s *State) Bottom(total, height int) {
	s.scrollTo(func(_, _ int) int { return maxOffset(total, height) }, total, height)
}

// scrollTo applies a navigation move, clamps it, and flips the pane
// into manual mode only if the position actually changed.
func (s *State) scrollTo(move func(pos, page int) int, total, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := maxOffset(total, height)
	pos := move(s.scroll, height)
	if pos < 0 {
		pos = 0
	}
	if pos > limit {
		pos = limit
	}
	if pos != s.scroll {
		s.scroll = pos
		s.userScrolled = true
	}
}

// Follow drops manual mode so the next Reconcile snaps to the tail.
func (s *State) Follow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userScrolled = false
}

// Reset zeroes the position after the history is cleared.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll = 0
}

func maxOffset(total, height int) int {
	if total <= height {
		return 0
	}
	return total - height
}
