// Package ui implements the dashboard TUI on Bubble Tea.
//
// The model renders every configured source as a pane in an
// approximately square grid, or one maximized pane. Each frame it
// snapshots the source's history buffer, wraps it at the pane's inner
// width, reconciles the pane's scroll state (auto-follow versus manual),
// and highlights only the visible slice.
//
// Input never reaches the ingestion side: key events mutate selection,
// the maximize flag, and per-pane scroll state only. A 100ms tick keeps
// the screen fresh while lines stream in with no input at all.
//
// Key bindings: arrows/hjkl move pane selection in the grid and scroll
// in a maximized pane; enter or m toggles maximize; pgup/pgdn, home/end
// page and jump while maximized; r clears the active pane's history;
// q or ctrl+c quits.
package ui
