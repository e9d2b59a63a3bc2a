// Package config loads fennec's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up next to the executable.
const FileName = "config.toml"

// EnvPath overrides the config location when no flag is given.
const EnvPath = "FENNEC_CONFIG"

const (
	DefaultTheme    = "gruvbox"
	DefaultTabWidth = 4

	minTabWidth = 1
	maxTabWidth = 16
)

type Theme struct {
	Name string `toml:"name"`
	// LightFix swaps foreground shades that are unreadable on light
	// terminal backgrounds.
	LightFix bool `toml:"light_fix,omitempty"`
	// LightFixSet records whether the file set light_fix. When it did not,
	// the caller may detect the terminal background instead.
	LightFixSet bool `toml:"-"`
}

type Config struct {
	TabWidth int   `toml:"tab_width"`
	Theme    Theme `toml:"theme"`
}

func Default() Config {
	return Config{
		TabWidth: DefaultTabWidth,
		Theme:    Theme{Name: DefaultTheme},
	}
}

// Load reads path over the defaults. A missing file is not an error. On a
// malformed file the defaults are returned together with the decode error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.Theme.LightFixSet = md.IsDefined("theme", "light_fix")
	return cfg.Validate(), nil
}

// EnsureDefault writes the default config to path when no file exists there
// yet. It reports whether a file was created.
func EnsureDefault(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := Write(path, Default()); err != nil {
		return false, err
	}
	return true, nil
}

// Validate fills empty fields with defaults and clamps out-of-range values.
func (c Config) Validate() Config {
	if c.Theme.Name == "" {
		c.Theme.Name = DefaultTheme
	}
	switch {
	case c.TabWidth == 0:
		c.TabWidth = DefaultTabWidth
	case c.TabWidth < minTabWidth:
		c.TabWidth = minTabWidth
	case c.TabWidth > maxTabWidth:
		c.TabWidth = maxTabWidth
	}
	return c
}

// Write encodes c to path, creating or truncating the file.
func Write(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Path resolves the config location: flagPath, then $FENNEC_CONFIG, then
// config.toml in the executable's directory.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}
