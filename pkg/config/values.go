package config

import (
	"fmt"
	"strconv"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
)

// Constraint wraps layout.Constraint with TOML-friendly string parsing.
// Accepts "auto", "40", ">=40", "<=40" and "20..60".
type Constraint struct {
	layout.Constraint
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (c *Constraint) UnmarshalText(text []byte) error {
	parsed, err := layout.ParseConstraint(string(text))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Constraint = parsed
	return nil
}

// UnmarshalTOML accepts a bare integer as an exact size, so both
// width = 40 and width = ">=40" decode.
func (c *Constraint) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		return c.UnmarshalText([]byte(strconv.FormatInt(v, 10)))
	case string:
		return c.UnmarshalText([]byte(v))
	}
	return fmt.Errorf("config: constraint must be a string or integer, got %T", v)
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (c Constraint) MarshalText() ([]byte, error) {
	return []byte(c.Get().String()), nil
}

// Get returns the wrapped constraint, Auto when unset.
func (c Constraint) Get() layout.Constraint {
	if c.Constraint == nil {
		return layout.Auto{}
	}
	return c.Constraint
}

// Strategy wraps layout.Strategy with TOML-friendly name parsing.
type Strategy struct {
	layout.Strategy
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := layout.ParseStrategy(string(text))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	s.Strategy = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.Strategy.String()), nil
}
