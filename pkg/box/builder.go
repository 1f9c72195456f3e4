// Package box is the convenience layer over the layout engine and the
// renderer: a fluent Builder that collects sections and sizing choices,
// and a Box that caches its rendered output until its content changes.
package box

import (
	"errors"
	"fmt"
	"log/slog"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/render"
	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/width"
)

// Builder assembles a Box. Methods record the first error they meet and
// Build reports it.
type Builder struct {
	sections []section.Section
	theme    theme.Theme
	cons     layout.Constraints
	opts     render.Options
	cache    *layout.Cache
	err      error
}

// New returns a Builder using the default theme and constraints.
func New() *Builder {
	return &Builder{
		theme: theme.Default(),
		cons:  layout.DefaultConstraints(),
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Title appends a centered title. Newlines start additional title lines.
func (b *Builder) Title(text string) *Builder {
	b.sections = append(b.sections, section.NewTitle(text))
	return b
}

// Headers appends a header bar.
func (b *Builder) Headers(headers ...string) *Builder {
	b.sections = append(b.sections, section.NewHeaders(headers...))
	return b
}

// Data appends a table section.
func (b *Builder) Data(headers []string, rows ...[]string) *Builder {
	b.sections = append(b.sections, section.NewData(headers, rows...))
	return b
}

// Row appends one row to the trailing Data section, starting a header-less
// one when the last section is not a table. A row longer than the table's
// column count is an error.
func (b *Builder) Row(cells ...string) *Builder {
	n := len(b.sections)
	if n == 0 || b.sections[n-1].Kind != section.Data {
		b.sections = append(b.sections, section.NewData(nil, cells))
		return b
	}
	s, err := appendRow(b.sections[n-1], cells)
	if err != nil {
		return b.fail(err)
	}
	b.sections[n-1] = s
	return b
}

// Sheet appends a spreadsheet: columns become the header row behind an
// empty corner cell, and the first cell of every row is its row label.
// Spreadsheet mode is switched on.
func (b *Builder) Sheet(columns []string, rows ...[]string) *Builder {
	headers := append([]string{""}, columns...)
	b.sections = append(b.sections, section.NewData(headers, rows...))
	b.cons.Spreadsheet = true
	return b
}

// Divider appends an explicit divider line.
func (b *Builder) Divider() *Builder {
	b.sections = append(b.sections, section.NewDivider())
	return b
}

// Canvas appends pre-rendered lines. A zero width and height size the
// canvas to its lines.
func (b *Builder) Canvas(w, h int, lines ...string) *Builder {
	b.sections = append(b.sections, section.NewCanvas(w, h, lines...))
	return b
}

// Align sets the alignment of the most recently added section.
func (b *Builder) Align(a section.Align) *Builder {
	if n := len(b.sections); n > 0 {
		b.sections[n-1].Align = a
	}
	return b
}

// Theme selects the border theme.
func (b *Builder) Theme(th theme.Theme) *Builder {
	b.theme = th
	return b
}

// ThemeName selects a registered theme by name.
func (b *Builder) ThemeName(name string) *Builder {
	th, ok := theme.Lookup(name)
	if !ok {
		return b.fail(fmt.Errorf("box: unknown theme %q", name))
	}
	b.theme = th
	return b
}

// Width constrains the total width.
func (b *Builder) Width(c layout.Constraint) *Builder {
	b.cons.Width = c
	return b
}

// Height constrains the total height.
func (b *Builder) Height(c layout.Constraint) *Builder {
	b.cons.Height = c
	return b
}

// Padding sets the padding on each side of every cell.
func (b *Builder) Padding(n int) *Builder {
	b.cons.CellPadding = n
	return b
}

// Strategy selects how a width constraint spreads its difference.
func (b *Builder) Strategy(s layout.Strategy) *Builder {
	b.cons.Strategy = s
	return b
}

// Spreadsheet toggles spreadsheet mode.
func (b *Builder) Spreadsheet(on bool) *Builder {
	b.cons.Spreadsheet = on
	return b
}

// Measurer replaces the width measurer for both layout and rendering.
func (b *Builder) Measurer(m width.Measurer) *Builder {
	b.cons.Measurer = m
	b.opts.Measurer = m
	return b
}

// Ellipsis sets the truncation marker.
func (b *Builder) Ellipsis(s string) *Builder {
	b.opts.Ellipsis = s
	return b
}

// Logger sets the logger layout decisions are reported to.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.cons.Logger = l
	return b
}

// Cache shares a layout cache between boxes.
func (b *Builder) Cache(c *layout.Cache) *Builder {
	b.cache = c
	return b
}

// Build validates the configuration and lays the box out. Configuration
// errors (an inverted range, a half-sized canvas, a ragged table) are
// reported here, before anything is rendered.
func (b *Builder) Build() (*Box, error) {
	if b.err != nil {
		return nil, b.err
	}
	bx := &Box{
		sections: append([]section.Section(nil), b.sections...),
		theme:    b.theme,
		cons:     b.cons,
		opts:     b.opts,
		cache:    b.cache,
	}
	if _, err := bx.layout(); err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return bx, nil
}

// MustBuild is Build for static content; it panics on error.
func (b *Builder) MustBuild() *Box {
	bx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return bx
}

var errRowTooLong = errors.New("box: row has more cells than the table has columns")

// appendRow returns a copy of s with one more row. The cells slice is
// copied so earlier snapshots of s stay unchanged.
func appendRow(s section.Section, cells []string) (section.Section, error) {
	cols := s.ColumnCount()
	if len(s.Headers) == 0 && len(s.Cells) == 0 {
		cols = max(cols, len(cells))
		s.Columns = cols
	}
	if len(cells) > cols {
		return s, fmt.Errorf("%w (%d > %d)", errRowTooLong, len(cells), cols)
	}
	next := make([]string, len(s.Cells), len(s.Cells)+cols)
	copy(next, s.Cells)
	next = append(next, cells...)
	for i := len(cells); i < cols; i++ {
		next = append(next, "")
	}
	s.Cells = next
	return s, nil
}
