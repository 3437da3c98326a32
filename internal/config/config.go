package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations.
type Paths struct {
	LogDir      string `toml:"log_dir"`
	JournalPath string `toml:"journal_path"`
}

// Log contains logger settings.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Engine contains merge-engine settings.
type Engine struct {
	Framework string `toml:"framework"`
	Recursive bool   `toml:"recursive"`
}

// Wikipedia contains settings for the external summary fetcher.
type Wikipedia struct {
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"`
	SentenceCount  int    `toml:"sentence_count"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

// Config is the root configuration document.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Log       Log       `toml:"log"`
	Engine    Engine    `toml:"engine"`
	Wikipedia Wikipedia `toml:"wikipedia"`
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return expandPath("~/.config/quill/config.toml")
}

// Load reads configuration from the given path, QUILL_CONFIG, or the default
// location, in that order. A missing file is not an error; defaults apply.
// The second return reports the path actually consulted ("" when defaults
// were used without a file).
func Load(path string) (*Config, string, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = strings.TrimSpace(os.Getenv("QUILL_CONFIG"))
	}
	if resolved == "" {
		resolved = DefaultPath()
	}
	resolved = expandPath(resolved)

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize()
			if err := cfg.Validate(); err != nil {
				return nil, "", err
			}
			return &cfg, "", nil
		}
		return nil, "", fmt.Errorf("read config %s: %w", resolved, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// EnsureDirectories creates the directories the runtime writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir, filepath.Dir(c.Paths.JournalPath)}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) normalize() {
	c.Paths.LogDir = expandPath(strings.TrimSpace(c.Paths.LogDir))
	c.Paths.JournalPath = expandPath(strings.TrimSpace(c.Paths.JournalPath))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Engine.Framework = strings.TrimSpace(c.Engine.Framework)
	c.Wikipedia.BaseURL = strings.TrimSpace(c.Wikipedia.BaseURL)
	c.Wikipedia.UserAgent = strings.TrimSpace(c.Wikipedia.UserAgent)
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
