// Package layout computes the geometry of a box from its sections and
// theme: how many columns the table grid has, how wide each column is, and
// which output line every section and border starts on.
//
// The width calculation runs in four passes:
//  1. Natural width: each column is as wide as its widest header or cell.
//  2. Expansion: when a title or canvas needs more room than the columns
//     provide, the shortfall is spread over the columns in proportion to
//     their width (remainder to the last column).
//  3. Padding and accounting: each column gains 2*CellPadding, then the
//     column separators and the left and right edges are added.
//  4. Constraint: the width constraint maps the natural total to the final
//     total and the difference is handed to the columns by the
//     extra-space Strategy.
//
// Height is the sum of every section's lines and every border line; a
// height constraint clips or pads the body and never reflows columns.
package layout

import (
	"fmt"
	"io"
	"log/slog"

	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/width"
)

const (
	// DefaultColumnWidth is the natural width of a column with no content.
	DefaultColumnWidth = 3
	// DefaultCellPadding is the padding on each side of a cell.
	DefaultCellPadding = 1
	// TitleMargin is the horizontal room a title reserves around its
	// longest line, split evenly between both sides.
	TitleMargin = 4
	// MinColumnWidth is the narrowest a column is shrunk to by a width
	// constraint.
	MinColumnWidth = 1
)

// Constraints are the caller's sizing choices.
type Constraints struct {
	Width       Constraint // nil is Auto
	Height      Constraint // nil is Auto
	CellPadding int
	Strategy    Strategy
	// Spreadsheet marks a box whose first column holds row labels; it
	// changes the default Strategy to StrategyFirst.
	Spreadsheet bool
	Measurer    width.Measurer // nil is width.Heuristic
	Logger      *slog.Logger   // nil discards
}

// DefaultConstraints returns auto sizing with one column of padding.
func DefaultConstraints() Constraints {
	return Constraints{CellPadding: DefaultCellPadding}
}

// Validate reports configuration errors before any layout work happens.
func (c Constraints) Validate() error {
	if c.CellPadding < 0 {
		return fmt.Errorf("layout: cell padding must not be negative (got %d)", c.CellPadding)
	}
	if c.Width != nil {
		if err := c.Width.Validate(); err != nil {
			return fmt.Errorf("width: %w", err)
		}
	}
	if c.Height != nil {
		if err := c.Height.Validate(); err != nil {
			return fmt.Errorf("height: %w", err)
		}
	}
	if _, ok := strategyNames[c.Strategy]; !ok {
		return fmt.Errorf("layout: unknown strategy %d", int(c.Strategy))
	}
	return nil
}

func (c Constraints) measurer() width.Measurer {
	if c.Measurer == nil {
		return width.Heuristic
	}
	return c.Measurer
}

func (c Constraints) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Info is the computed geometry of one box. It is never mutated after
// Calculate returns.
//
// TotalWidth == LeftWidth + sum(ColumnWidths) +
// (len(ColumnWidths)-1)*SeparatorWidth + RightWidth.
type Info struct {
	TotalWidth    int
	TotalHeight   int
	ContentWidth  int
	ContentHeight int
	NaturalWidth  int
	NaturalHeight int

	ColumnWidths   []int
	CellPadding    int
	LeftWidth      int
	RightWidth     int
	SeparatorWidth int

	// TopLines and BottomLines are the heights of the outer rules.
	TopLines    int
	BottomLines int

	// SectionOffsets[i] is the output line on which section i begins,
	// before any height clipping.
	SectionOffsets []int
	Blocks         []Block
	Strategy       Strategy
}

// Columns returns the grid's column count.
func (in Info) Columns() int {
	return len(in.ColumnWidths)
}

// Calculate lays out sections drawn with th under c.
func Calculate(sections []section.Section, th theme.Theme, c Constraints) (Info, error) {
	if err := c.Validate(); err != nil {
		return Info{}, err
	}
	for i, s := range sections {
		if err := s.Validate(); err != nil {
			return Info{}, fmt.Errorf("section %d: %w", i, err)
		}
	}
	m := c.measurer()

	info := Info{
		CellPadding:    c.CellPadding,
		LeftWidth:      m.Width(th.Edge(theme.Left).FirstRow()),
		RightWidth:     m.Width(th.Edge(theme.Right).FirstRow()),
		SeparatorWidth: m.Width(th.Divider(theme.ColumnDivider).FirstRow()),
		Strategy:       c.Strategy.resolve(c.Spreadsheet),
	}

	widths := naturalWidths(sections, m)
	n := len(widths)
	pad := 2 * c.CellPadding
	seps := (n - 1) * info.SeparatorWidth

	content := seps
	for _, w := range widths {
		content += w + pad
	}
	if need := requiredWidth(sections, m); need > content {
		Proportional(widths, need-content)
	}
	for i := range widths {
		widths[i] += pad
	}
	info.NaturalWidth = info.LeftWidth + sum(widths) + seps + info.RightWidth

	var wc Constraint = Auto{}
	if c.Width != nil {
		wc = c.Width
	}
	if target := wc.Apply(info.NaturalWidth); target != info.NaturalWidth {
		Distribute(widths, target-info.NaturalWidth, info.Strategy, MinColumnWidth)
	}
	info.ColumnWidths = widths
	info.ContentWidth = sum(widths) + seps
	info.TotalWidth = info.LeftWidth + info.ContentWidth + info.RightWidth

	info.Blocks = plan(sections, th, n)
	info.SectionOffsets = make([]int, len(sections))
	seen := make([]bool, len(sections))
	for _, b := range info.Blocks {
		if b.Section >= 0 && !seen[b.Section] && (b.Kind == BlockContent || sections[b.Section].Kind == section.Divider) {
			info.SectionOffsets[b.Section] = b.Offset
			seen[b.Section] = true
		}
		info.NaturalHeight += b.Lines
	}
	info.TopLines = info.Blocks[0].Lines
	info.BottomLines = info.Blocks[len(info.Blocks)-1].Lines

	var hc Constraint = Auto{}
	if c.Height != nil {
		hc = c.Height
	}
	frame := info.TopLines + info.BottomLines
	info.ContentHeight = max(hc.Apply(info.NaturalHeight)-frame, 0)
	info.TotalHeight = frame + info.ContentHeight

	c.logger().Debug("layout calculated",
		"sections", len(sections),
		"columns", n,
		"column_widths", info.ColumnWidths,
		"natural_width", info.NaturalWidth,
		"total_width", info.TotalWidth,
		"total_height", info.TotalHeight,
		"strategy", info.Strategy.String(),
	)
	return info, nil
}

// naturalWidths returns the unpadded natural width of every grid column.
// The grid has at least one column.
func naturalWidths(sections []section.Section, m width.Measurer) []int {
	n := 1
	for _, s := range sections {
		n = max(n, s.ColumnCount())
	}
	widths := make([]int, n)
	for _, s := range sections {
		if !s.IsTable() {
			continue
		}
		for i, h := range s.Headers {
			widths[i] = max(widths[i], m.Width(h))
		}
		for _, row := range s.Rows() {
			for i, cell := range row {
				widths[i] = max(widths[i], m.Width(cell))
			}
		}
	}
	for i, w := range widths {
		if w == 0 {
			widths[i] = DefaultColumnWidth
		}
	}
	return widths
}

// requiredWidth is the content width the full-width sections need: the
// longest title line plus TitleMargin, and the width of every canvas.
func requiredWidth(sections []section.Section, m width.Measurer) int {
	need := 0
	for _, s := range sections {
		switch s.Kind {
		case section.Title:
			for _, line := range s.Lines() {
				need = max(need, m.Width(line)+TitleMargin)
			}
		case section.Canvas:
			if s.Width > 0 {
				need = max(need, s.Width)
				continue
			}
			for _, line := range s.Lines() {
				need = max(need, m.Width(line))
			}
		}
	}
	return need
}

func sum(vs []int) int {
	t := 0
	for _, v := range vs {
		t += v
	}
	return t
}
