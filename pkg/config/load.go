package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/boxkit/config.toml
//  2. ~/.config/boxkit/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	paths := configSearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return cfg, applyEnvOverrides(cfg)
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. A preset named in
// the file is applied first; explicit keys then override it.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	var peek struct {
		Box struct {
			Preset string `toml:"preset"`
		} `toml:"box"`
	}
	if _, err := toml.Decode(string(data), &peek); err != nil {
		return nil, err
	}
	if peek.Box.Preset != "" {
		cfg.Box = BoxPreset(peek.Box.Preset)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Box: BoxPreset("default"),
		Input: InputConfig{
			Format: "csv",
			Header: true,
		},
		Themes: ThemesConfig{
			Dir: filepath.Join(xdgConfigHome(home), "boxkit", "themes"),
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BOXKIT_THEME"); v != "" {
		cfg.Box.Theme = v
	}
	if v := os.Getenv("BOXKIT_WIDTH"); v != "" {
		if err := cfg.Box.Width.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("BOXKIT_WIDTH: %w", err)
		}
	}
	if v := os.Getenv("BOXKIT_HEIGHT"); v != "" {
		if err := cfg.Box.Height.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("BOXKIT_HEIGHT: %w", err)
		}
	}
	if v := os.Getenv("BOXKIT_PADDING"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOXKIT_PADDING: %w", err)
		}
		cfg.Box.Padding = n
	}
	if v := os.Getenv("BOXKIT_STRATEGY"); v != "" {
		if err := cfg.Box.Strategy.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("BOXKIT_STRATEGY: %w", err)
		}
	}
	if v := os.Getenv("BOXKIT_MEASURER"); v != "" {
		cfg.Box.Measurer = v
	}
	if v := os.Getenv("BOXKIT_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "boxkit", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "boxkit", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
