// Package config provides TOML-based configuration for boxkit.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/width"
)

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Box     BoxConfig     `toml:"box"`
	Input   InputConfig   `toml:"input"`
	Themes  ThemesConfig  `toml:"themes"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// BoxConfig holds the sizing and drawing choices applied to every box.
type BoxConfig struct {
	Preset      string     `toml:"preset"`
	Theme       string     `toml:"theme"`
	Width       Constraint `toml:"width"`
	Height      Constraint `toml:"height"`
	Padding     int        `toml:"padding"`
	Strategy    Strategy   `toml:"strategy"`
	Spreadsheet bool       `toml:"spreadsheet"`
	Measurer    string     `toml:"measurer"`
	Ellipsis    string     `toml:"ellipsis"`
}

// InputConfig controls how the CLI reads tabular input.
type InputConfig struct {
	Format string `toml:"format"` // "csv" or "tsv"
	Header bool   `toml:"header"` // first record holds column names
}

// ThemesConfig points at user theme files.
type ThemesConfig struct {
	Dir string `toml:"dir"`
}

// Validate checks every name and range in cfg. User themes must already
// be registered (see theme.LoadDir).
func (cfg *Config) Validate() error {
	var errs []error
	if _, ok := theme.Lookup(cfg.Box.Theme); !ok {
		errs = append(errs, fmt.Errorf("box.theme: unknown theme %q", cfg.Box.Theme))
	}
	if err := cfg.Box.Width.Get().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("box.width: %w", err))
	}
	if err := cfg.Box.Height.Get().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("box.height: %w", err))
	}
	if cfg.Box.Padding < 0 {
		errs = append(errs, fmt.Errorf("box.padding: must not be negative (got %d)", cfg.Box.Padding))
	}
	if _, err := width.Lookup(cfg.Box.Measurer); err != nil {
		errs = append(errs, fmt.Errorf("box.measurer: %w", err))
	}
	switch strings.ToLower(cfg.Input.Format) {
	case "", "csv", "tsv":
	default:
		errs = append(errs, fmt.Errorf("input.format: unknown format %q", cfg.Input.Format))
	}
	if _, err := ParseLogLevel(cfg.General.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("general.log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Constraints converts the box settings into layout constraints. The
// measurer name must already have been validated.
func (b BoxConfig) Constraints() layout.Constraints {
	m, _ := width.Lookup(b.Measurer)
	return layout.Constraints{
		Width:       b.Width.Get(),
		Height:      b.Height.Get(),
		CellPadding: b.Padding,
		Strategy:    b.Strategy.Strategy,
		Spreadsheet: b.Spreadsheet,
		Measurer:    m,
	}
}

// ParseLogLevel maps a level name to a slog.Level. The empty string is
// info.
func ParseLogLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}
