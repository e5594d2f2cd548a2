package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[[logs]]
name = "api"
host = "10.0.0.5"
log_path = "/var/log/api.log"
username = "deploy"
password = "hunter2"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Sources) != 1 {
		t.Fatalf("Sources = %d, want 1", len(cfg.Sources))
	}
	src := cfg.Sources[0]
	if src.Port != defaultPort {
		t.Fatalf("Port = %d, want %d", src.Port, defaultPort)
	}
	if src.MaxHistory != defaultMaxHistory {
		t.Fatalf("MaxHistory = %d, want %d", src.MaxHistory, defaultMaxHistory)
	}
	if cfg.TailLines != defaultTailLines {
		t.Fatalf("TailLines = %d, want %d", cfg.TailLines, defaultTailLines)
	}
	if cfg.ReadTimeoutSecs != defaultReadTimeout {
		t.Fatalf("ReadTimeoutSecs = %d, want %d", cfg.ReadTimeoutSecs, defaultReadTimeout)
	}
	if src.Addr() != "10.0.0.5:22" {
		t.Fatalf("Addr = %q, want %q", src.Addr(), "10.0.0.5:22")
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := writeConfig(t, `
tail_lines = 500
read_timeout_secs = 60

[[logs]]
name = "  web  "
host = "logs.example.com"
port = 2222
log_path = "/srv/web/access.log"
max_history = 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	src := cfg.Sources[0]
	if src.Name != "web" {
		t.Fatalf("Name = %q, want %q", src.Name, "web")
	}
	if src.Port != 2222 {
		t.Fatalf("Port = %d, want 2222", src.Port)
	}
	if src.MaxHistory != 42 {
		t.Fatalf("MaxHistory = %d, want 42", src.MaxHistory)
	}
	if cfg.TailLines != 500 {
		t.Fatalf("TailLines = %d, want 500", cfg.TailLines)
	}
	if cfg.ReadTimeoutSecs != 60 {
		t.Fatalf("ReadTimeoutSecs = %d, want 60", cfg.ReadTimeoutSecs)
	}
}

func TestLoad_ExpandsKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
[[logs]]
name = "db"
host = "db01"
log_path = "/var/log/db.log"
ssh_key = "~/.ssh/id_ed25519"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, ".ssh", "id_ed25519")
	if cfg.Sources[0].SSHKey != want {
		t.Fatalf("SSHKey = %q, want %q", cfg.Sources[0].SSHKey, want)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load succeeded for missing file, want error")
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no logs",
			content: `tail_lines = 10`,
			wantErr: "no [[logs]]",
		},
		{
			name: "missing name",
			content: `
[[logs]]
host = "h"
log_path = "/l"
`,
			wantErr: "name is required",
		},
		{
			name: "missing host",
			content: `
[[logs]]
name = "a"
log_path = "/l"
`,
			wantErr: "host is required",
		},
		{
			name: "missing log path",
			content: `
[[logs]]
name = "a"
host = "h"
`,
			wantErr: "log_path is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatalf("Load succeeded, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
