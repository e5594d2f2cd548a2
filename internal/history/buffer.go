// Package history provides the bounded per-source line buffer shared
// between an ingestion goroutine and the render loop.
package history

import "sync"

// DefaultMax caps the number of lines kept per source when the config
// does not override it. Keeping this reasonably small avoids unbounded
// memory growth and slow re-renders on very chatty logs.
const DefaultMax = 10000

// Buffer is an ordered sequence of raw log lines with FIFO eviction.
// It has exactly two users: the owning session goroutine pushes, the
// render loop snapshots. All access is serialized by one mutex, and
// eviction happens under the same lock acquisition as the append, so a
// reader never observes more than Max lines nor a torn sequence.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewBuffer returns a buffer holding at most max lines. A non-positive
// max falls back to DefaultMax.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = DefaultMax
	}
	return &Buffer{max: max}
}

// Push appends line and evicts the oldest lines until the bound holds.
func (b *Buffer) Push(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, line)
	if excess := len(b.lines) - b.max; excess > 0 {
		b.lines = append(b.lines[:0], b.lines[excess:]...)
	}
}

// Len returns the current number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Snapshot returns a copy of the buffered lines in arrival order.
func (b *Buffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.lines) == 0 {
		return nil
	}
	dup := make([]string, len(b.lines))
	copy(dup, b.lines)
	return dup
}

// Clear drops all buffered lines.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = b.lines[:0]
}
