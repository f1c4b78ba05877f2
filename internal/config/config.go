package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const maxTabWidth = 16

// ViewerConfig holds the display options of one run. It is built once by
// Resolve and passed by value; nothing mutates it afterwards.
type ViewerConfig struct {
	LineCountOnly bool
	ForceInline   bool
	StartAtEnd    bool
	TabWidth      int
}

// Config holds all settings read from the config file
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig holds display defaults
type DisplayConfig struct {
	StartAtEnd  bool `toml:"start_at_end"`
	ForceInline bool `toml:"force_inline"`
	TabWidth    int  `toml:"tab_width"`
}

// LogConfig controls the optional debug log file
type LogConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Flags are the command-line options that override or extend the file.
type Flags struct {
	LineCountOnly bool
	ForceInline   bool
	StartAtEnd    bool
	LogFile       string
	LogLevel      string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			TabWidth: 4,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the config file at path on top of the defaults. An empty path
// means the default location, where a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Display.TabWidth < 1 || c.Display.TabWidth > maxTabWidth {
		return fmt.Errorf("display.tab_width must be between 1 and %d, got %d", maxTabWidth, c.Display.TabWidth)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

// DefaultPath returns the config file location: $CATTER_CONFIG, then
// $XDG_CONFIG_HOME/catter/config.toml, then ~/.config/catter/config.toml.
func DefaultPath() string {
	if env := os.Getenv("CATTER_CONFIG"); env != "" {
		return env
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "catter", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "catter", "config.toml")
}

// Resolve combines file settings and flags into the run's ViewerConfig.
// Boolean options are enabled by either source. Output that does not go to
// a terminal is always printed inline.
func Resolve(cfg *Config, flags Flags, stdoutIsTerminal bool) ViewerConfig {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return ViewerConfig{
		LineCountOnly: flags.LineCountOnly,
		ForceInline:   flags.ForceInline || cfg.Display.ForceInline || !stdoutIsTerminal,
		StartAtEnd:    flags.StartAtEnd || cfg.Display.StartAtEnd,
		TabWidth:      cfg.Display.TabWidth,
	}
}

// ResolveLog applies the logging flags on top of the file settings.
func ResolveLog(cfg *Config, flags Flags) LogConfig {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Log
	if flags.LogFile != "" {
		out.File = flags.LogFile
	}
	if flags.LogLevel != "" {
		out.Level = flags.LogLevel
	}
	return out
}
