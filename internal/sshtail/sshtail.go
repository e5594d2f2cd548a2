// Package sshtail implements the remote transport: it dials a source's
// host over SSH, authenticates with its configured credential, and runs
// a remote tail that seeds recent history and then streams appends.
package sshtail

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/happy-shine/rogger/internal/config"
	"github.com/happy-shine/rogger/internal/session"
)

const dialTimeout = 10 * time.Second

// Transport opens SSH tail streams. It implements session.Transport.
type Transport struct {
	// TailLines is how many trailing lines the remote tail seeds.
	TailLines int

	// ReadTimeout bounds how long a read may sit idle before the
	// connection is considered stalled. Zero disables the deadline.
	ReadTimeout time.Duration
}

// New builds a transport from the global config knobs.
func New(cfg config.Config) *Transport {
	return &Transport{
		TailLines:   cfg.TailLines,
		ReadTimeout: time.Duration(cfg.ReadTimeoutSecs) * time.Second,
	}
}

// Open dials src, authenticates, and starts the remote tail. Errors are
// prefixed with the stage that failed (connect, handshake, auth, exec)
// so the pane's status line shows where the attempt died.
func (t *Transport) Open(ctx context.Context, src config.Source) (session.LineStream, error) {
	auth, err := authMethods(src)
	if err != nil {
		return nil, err
	}

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", src.Addr())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if t.ReadTimeout > 0 {
		conn = &deadlineConn{Conn: conn, timeout: t.ReadTimeout}
	}

	clientCfg := &ssh.ClientConfig{
		User: src.Username,
		Auth: auth,
		// The original tool never verified host keys; a log viewer
		// trusts its own config. Revisit if rogger ever writes back.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, src.Addr(), clientCfg)
	if err != nil {
		conn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			return nil, fmt.Errorf("auth: %w", err)
		}
		return nil, fmt.Errorf("handshake: %w", err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)

	sess, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("exec: %w", err)
	}

	stdout, err := sess.StdoutPipe()
	if err != nil {
		sess.Close()
		client.Close()
		return nil, fmt.Errorf("exec: %w", err)
	}

	tailLines := t.TailLines
	if tailLines <= 0 {
		tailLines = 100
	}
	cmd := fmt.Sprintf("tail -n %d -f %s", tailLines, src.LogPath)
	if err := sess.Start(cmd); err != nil {
		sess.Close()
		client.Close()
		return nil, fmt.Errorf("exec: %w", err)
	}

	return &lineStream{
		reader:  bufio.NewReader(stdout),
		session: sess,
		client:  client,
	}, nil
}

func authMethods(src config.Source) ([]ssh.AuthMethod, error) {
	if src.Password != "" {
		return []ssh.AuthMethod{ssh.Password(src.Password)}, nil
	}
	if src.SSHKey != "" {
		keyBytes, err := os.ReadFile(src.SSHKey)
		if err != nil {
			return nil, fmt.Errorf("auth: read key %s: %w", src.SSHKey, err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("auth: parse key %s: %w", src.SSHKey, err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	// The session layer rejects credential-less sources before dialing;
	// this is a backstop for direct callers.
	return nil, session.ErrNoAuth
}

// deadlineConn refreshes a read deadline on every read so an idle
// remote surfaces as a timeout instead of hanging the ingestion loop.
type deadlineConn struct {
	net.Conn
	timeout time.Duration
}

func (c *deadlineConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}

// lineStream adapts the remote command's stdout into line reads.
type lineStream struct {
	reader  *bufio.Reader
	session *ssh.Session
	client  *ssh.Client
}

func (s *lineStream) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final unterminated line before a clean close.
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (s *lineStream) Close() error {
	s.session.Close()
	return s.client.Close()
}
