// Package session runs the per-source ingestion loop: open the remote
// stream, read lines, fill the history buffer, and track connection
// status. One session per configured source, one goroutine per session,
// started once at startup and never restarted.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/happy-shine/rogger/internal/config"
	"github.com/happy-shine/rogger/internal/history"
	"github.com/happy-shine/rogger/internal/view"
)

// ErrNoAuth is returned when a source has neither a password nor a key
// path configured. The check runs before any network activity.
var ErrNoAuth = errors.New("no authentication method provided")

// LineStream yields complete lines from an established remote tail.
type LineStream interface {
	// ReadLine blocks until a full line is available and returns it
	// without the trailing newline. io.EOF signals a clean close.
	ReadLine() (string, error)
	Close() error
}

// Transport establishes the remote tail stream for one source. Errors
// carry a stage prefix (connect/handshake/auth/exec) so the pane shows
// where the attempt died.
type Transport interface {
	Open(ctx context.Context, src config.Source) (LineStream, error)
}

// Session owns one source's ingestion loop and its shared cells.
type Session struct {
	src       config.Source
	transport Transport
	buf       *history.Buffer
	vs        *view.State
	status    statusCell
}

// New builds a session for src. The buffer and view state are shared
// with the renderer; the session is their sole ingestion-side writer.
func New(src config.Source, transport Transport, buf *history.Buffer, vs *view.State) *Session {
	return &Session{src: src, transport: transport, buf: buf, vs: vs}
}

// Name returns the configured source name.
func (s *Session) Name() string { return s.src.Name }

// Buffer returns the session's history buffer.
func (s *Session) Buffer() *history.Buffer { return s.buf }

// View returns the session's scroll state.
func (s *Session) View() *view.State { return s.vs }

// Status returns the current connection status.
func (s *Session) Status() Status {
	return s.status.get()
}

// Run executes the ingestion loop until the stream ends, a failure
// occurs, or ctx is cancelled. Every failure is terminal for this
// source only: the status carries the message and the loop exits, the
// rest of the dashboard keeps running. Run never returns an error to
// the caller; it is launched with `go`.
func (s *Session) Run(ctx context.Context) {
	// Credential presence is validated before opening any connection:
	// without a usable method the dial would be wasted.
	if s.src.Password == "" && s.src.SSHKey == "" {
		s.status.fail(ErrNoAuth.Error())
		return
	}

	stream, err := s.transport.Open(ctx, s.src)
	if err != nil {
		s.status.fail(err.Error())
		log.Printf("source %s: %v", s.src.Name, err)
		return
	}
	defer stream.Close()

	s.status.set(Status{State: StateConnected})

	// Unblock the pending read when the process shuts down.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stream.Close()
		case <-done:
		}
	}()

	for {
		line, err := stream.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			s.status.fail(fmt.Sprintf("read (%s): %v", s.src.Host, err))
			log.Printf("source %s: read: %v", s.src.Name, err)
			return
		}
		s.buf.Push(strings.TrimRight(line, "\r\n"))
		s.vs.Advance(s.buf.Len())
	}
}
