package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a Range constraint has Lo > Hi.
var ErrInvalidRange = errors.New("layout: constraint minimum exceeds maximum")

// Constraint bounds a total width or height. Apply maps the natural size to
// the constrained size. The marker method prevents external
// implementations.
type Constraint interface {
	Apply(natural int) int
	Validate() error
	String() string
	constraint() // sealed marker
}

// Auto keeps the natural size.
type Auto struct{}

func (Auto) constraint() {}
func (Auto) Apply(natural int) int { return natural }
func (Auto) Validate() error { return nil }
func (Auto) String() string { return "auto" }

// Exact forces the size to Value.
type Exact struct{ Value int }

func (Exact) constraint() {}
func (c Exact) Apply(int) int { return c.Value }
func (c Exact) String() string { return strconv.Itoa(c.Value) }
func (c Exact) Validate() error { return checkNonNeg("exact", c.Value) }

// Min grows the size to at least Value.
type Min struct{ Value int }

func (Min) constraint() {}
func (c Min) Apply(natural int) int { return max(natural, c.Value) }
func (c Min) String() string { return ">=" + strconv.Itoa(c.Value) }
func (c Min) Validate() error { return checkNonNeg("min", c.Value) }

// Max shrinks the size to at most Value.
type Max struct{ Value int }

func (Max) constraint() {}
func (c Max) Apply(natural int) int { return min(natural, c.Value) }
func (c Max) String() string { return "<=" + strconv.Itoa(c.Value) }
func (c Max) Validate() error { return checkNonNeg("max", c.Value) }

// Range clamps the size into [Lo, Hi].
type Range struct{ Lo, Hi int }

func (Range) constraint() {}

func (c Range) Apply(natural int) int {
	return clampRange(natural, c.Lo, c.Hi)
}

func (c Range) String() string {
	return strconv.Itoa(c.Lo) + ".." + strconv.Itoa(c.Hi)
}

func (c Range) Validate() error {
	if err := checkNonNeg("range", c.Lo); err != nil {
		return err
	}
	if c.Lo > c.Hi {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, c.Lo, c.Hi)
	}
	return nil
}

// ParseConstraint parses the textual forms used in config files and on the
// command line: "auto" (or ""), "40", ">=40", "<=40" and "20..60".
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	var (
		c   Constraint
		err error
	)
	switch {
	case s == "" || strings.EqualFold(s, "auto"):
		return Auto{}, nil
	case strings.HasPrefix(s, ">="):
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(s[2:]))
		c = Min{n}
	case strings.HasPrefix(s, "<="):
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(s[2:]))
		c = Max{n}
	case strings.Contains(s, ".."):
		lo, hi, _ := strings.Cut(s, "..")
		var l, h int
		if l, err = strconv.Atoi(strings.TrimSpace(lo)); err == nil {
			h, err = strconv.Atoi(strings.TrimSpace(hi))
		}
		c = Range{l, h}
	default:
		var n int
		n, err = strconv.Atoi(s)
		c = Exact{n}
	}
	if err != nil {
		return nil, fmt.Errorf("layout: invalid constraint %q: %w", s, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkNonNeg(kind string, v int) error {
	if v < 0 {
		return fmt.Errorf("layout: %s constraint must not be negative (got %d)", kind, v)
	}
	return nil
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
