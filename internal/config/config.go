package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultConfigPath  = "~/.rogger/config.toml"
	defaultPort        = 22
	defaultMaxHistory  = 10000
	defaultTailLines   = 100
	defaultReadTimeout = 30
)

// Source describes one remote log to tail. Immutable after Load.
type Source struct {
	Name       string
	Host       string
	Port       int
	LogPath    string
	Username   string
	Password   string
	SSHKey     string
	MaxHistory int
}

// Addr returns the host:port dial address for the source.
func (s Source) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config is the parsed dashboard configuration.
type Config struct {
	Sources []Source

	// TailLines is how many trailing lines the remote tail seeds before
	// it starts following appends.
	TailLines int

	// ReadTimeoutSecs is the idle read deadline applied to each source's
	// stream. A stalled connection surfaces as a read error after this
	// many seconds instead of hanging the ingestion loop forever.
	ReadTimeoutSecs int
}

type rawConfig struct {
	Logs            []rawLog `toml:"logs"`
	TailLines       int      `toml:"tail_lines"`
	ReadTimeoutSecs int      `toml:"read_timeout_secs"`
}

type rawLog struct {
	Name       string `toml:"name"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	LogPath    string `toml:"log_path"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	SSHKey     string `toml:"ssh_key"`
	MaxHistory int    `toml:"max_history"`
}

// Load locates and parses the configuration. An empty path uses the
// default ~/.rogger/config.toml. Missing or malformed configuration is
// fatal to the caller: without sources there is nothing to show.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.Logs) == 0 {
		return Config{}, errors.New("config has no [[logs]] entries")
	}

	cfg := Config{
		TailLines:       raw.TailLines,
		ReadTimeoutSecs: raw.ReadTimeoutSecs,
	}
	if cfg.TailLines <= 0 {
		cfg.TailLines = defaultTailLines
	}
	if cfg.ReadTimeoutSecs <= 0 {
		cfg.ReadTimeoutSecs = defaultReadTimeout
	}

	for i, l := range raw.Logs {
		src := Source{
			Name:       strings.TrimSpace(l.Name),
			Host:       strings.TrimSpace(l.Host),
			Port:       l.Port,
			LogPath:    strings.TrimSpace(l.LogPath),
			Username:   strings.TrimSpace(l.Username),
			Password:   l.Password,
			SSHKey:     strings.TrimSpace(l.SSHKey),
			MaxHistory: l.MaxHistory,
		}
		if src.Name == "" {
			return Config{}, fmt.Errorf("logs[%d]: name is required", i)
		}
		if src.Host == "" {
			return Config{}, fmt.Errorf("logs[%d] (%s): host is required", i, src.Name)
		}
		if src.LogPath == "" {
			return Config{}, fmt.Errorf("logs[%d] (%s): log_path is required", i, src.Name)
		}
		if src.Port <= 0 {
			src.Port = defaultPort
		}
		if src.MaxHistory <= 0 {
			src.MaxHistory = defaultMaxHistory
		}
		if src.SSHKey != "" {
			src.SSHKey = mustExpand(src.SSHKey)
		}
		cfg.Sources = append(cfg.Sources, src)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
