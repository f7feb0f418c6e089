package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/memscope/internal/linereader"
	"github.com/five82/memscope/internal/memreport"
)

// Config holds memscope settings.
type Config struct {
	ChunkSize int
	// PollInterval is how often the open report is checked for changes. Zero
	// disables watching.
	PollInterval time.Duration
	// LogFile receives debug logs when set.
	LogFile  string
	Sections memreport.Sections
}

const (
	defaultConfigPath  = "~/.config/memscope/config.toml"
	defaultPollSeconds = 2
)

type rawSection struct {
	Begin         string `toml:"begin"`
	End           string `toml:"end"`
	HeaderSkip    *int   `toml:"header_skip"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

type rawConfig struct {
	ChunkSize   int    `toml:"chunk_size"`
	PollSeconds int    `toml:"poll_seconds"`
	LogFile     string `toml:"log_file"`
	Sections    struct {
		Textures     rawSection `toml:"textures"`
		Platform     rawSection `toml:"platform"`
		StaticMeshes rawSection `toml:"static_meshes"`
	} `toml:"sections"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ChunkSize:    linereader.DefaultChunkSize,
		PollInterval: defaultPollSeconds * time.Second,
		Sections:     memreport.DefaultSections(),
	}
}

// Load locates and parses the memscope config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.ChunkSize > 0 {
		cfg.ChunkSize = raw.ChunkSize
	}
	cfg.PollInterval = PollInterval(raw.PollSeconds)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	cfg.Sections.Textures = raw.Sections.Textures.apply(cfg.Sections.Textures)
	cfg.Sections.Platform = raw.Sections.Platform.apply(cfg.Sections.Platform)
	cfg.Sections.StaticMeshes = raw.Sections.StaticMeshes.apply(cfg.Sections.StaticMeshes)

	return cfg, nil
}

// PollInterval converts a poll_seconds value: zero selects the default interval and
// a negative value disables watching.
func PollInterval(seconds int) time.Duration {
	switch {
	case seconds < 0:
		return 0
	case seconds == 0:
		return defaultPollSeconds * time.Second
	default:
		return time.Duration(seconds) * time.Second
	}
}

func (r rawSection) apply(spec memreport.SectionSpec) memreport.SectionSpec {
	if begin := strings.TrimSpace(r.Begin); begin != "" {
		spec.Begin = begin
	}
	if end := strings.TrimSpace(r.End); end != "" {
		spec.End = end
	}
	if r.HeaderSkip != nil && *r.HeaderSkip >= 0 {
		spec.HeaderSkip = *r.HeaderSkip
	}
	spec.CaseInsensitive = !r.CaseSensitive
	return spec
}

// ResolveLogFile expands a log path given on the command line.
func ResolveLogFile(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return mustExpand(path)
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
