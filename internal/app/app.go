// Package app wires configuration, sessions, and the UI together.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/happy-shine/rogger/internal/config"
	"github.com/happy-shine/rogger/internal/highlight"
	"github.com/happy-shine/rogger/internal/history"
	"github.com/happy-shine/rogger/internal/session"
	"github.com/happy-shine/rogger/internal/sshtail"
	"github.com/happy-shine/rogger/internal/ui"
	"github.com/happy-shine/rogger/internal/view"
)

// Options configure the rogger application.
type Options struct {
	ConfigPath string
	Debug      bool // write log output to rogger.log
}

// Run loads the configuration, starts one ingestion goroutine per
// source, and blocks in the TUI until the user quits or ctx is
// cancelled. Configuration problems are fatal and reported before any
// pane exists; per-source connection problems are not, they surface
// inside the affected pane.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.Debug {
		f, err := tea.LogToFile("rogger.log", "rogger")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	transport := sshtail.New(cfg)
	sessions := make([]*session.Session, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		s := session.New(src, transport, history.NewBuffer(src.MaxHistory), &view.State{})
		sessions = append(sessions, s)
		go s.Run(ctx)
	}

	model := ui.New(sessions, highlight.Default())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
