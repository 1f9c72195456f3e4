// Package section holds the content model of a box: an ordered list of
// sections, each a title, a header bar, a data table, a divider or a
// pre-rendered canvas. Sections are immutable values once built; the
// layout engine and renderer only read them.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the section variants.
type Kind int

const (
	Title Kind = iota
	Headers
	Data
	Divider
	Canvas
)

func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case Headers:
		return "headers"
	case Data:
		return "data"
	case Divider:
		return "divider"
	case Canvas:
		return "canvas"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Align controls horizontal placement of text within a cell or line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ErrCanvasDimensions is returned when a canvas sets only one of its
// width and height.
var ErrCanvasDimensions = errors.New("section: canvas width and height must be set together")

// Section is one logical chunk of box content.
//
// For Title sections Cells holds the title lines. For Canvas sections
// Cells holds the pre-rendered lines and Width/Height optionally fix the
// canvas size. Headers and Data sections are tables: Headers names the
// columns and Cells holds the data row-major. A Data section without
// headers uses Columns as its row length.
type Section struct {
	Kind    Kind
	Headers []string
	Cells   []string
	Columns int
	Align   Align
	Width   int
	Height  int
}

// NewTitle returns a centered title section. The text may span several
// lines.
func NewTitle(text string) Section {
	return Section{Kind: Title, Cells: strings.Split(text, "\n"), Align: AlignCenter}
}

// NewHeaders returns a header bar section.
func NewHeaders(headers ...string) Section {
	return Section{Kind: Headers, Headers: headers}
}

// NewData returns a table section. headers may be nil, in which case the
// column count is taken from the longest row. Short rows and a short
// header list are padded with empty cells.
func NewData(headers []string, rows ...[]string) Section {
	cols := len(headers)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if len(headers) > 0 && len(headers) < cols {
		padded := make([]string, cols)
		copy(padded, headers)
		headers = padded
	}
	s := Section{Kind: Data, Headers: headers, Columns: cols}
	for _, r := range rows {
		for c := 0; c < cols; c++ {
			if c < len(r) {
				s.Cells = append(s.Cells, r[c])
			} else {
				s.Cells = append(s.Cells, "")
			}
		}
	}
	return s
}

// NewDivider returns an explicit divider section.
func NewDivider() Section {
	return Section{Kind: Divider}
}

// NewCanvas returns a canvas section of the given size holding lines.
// A zero width and height size the canvas to its lines.
func NewCanvas(width, height int, lines ...string) Section {
	return Section{Kind: Canvas, Cells: lines, Width: width, Height: height}
}

// IsTable reports whether s lays out on the column grid.
func (s Section) IsTable() bool {
	return s.Kind == Headers || s.Kind == Data
}

// ColumnCount returns the number of columns s occupies on the grid, or 0
// for sections that span the full content width.
func (s Section) ColumnCount() int {
	if !s.IsTable() {
		return 0
	}
	if len(s.Headers) > 0 {
		return len(s.Headers)
	}
	if s.Columns > 0 {
		return s.Columns
	}
	return len(s.Cells)
}

// Rows splits Cells into rows of ColumnCount cells. A trailing partial row
// is padded with empty cells.
func (s Section) Rows() [][]string {
	cols := s.ColumnCount()
	if cols == 0 || len(s.Cells) == 0 {
		return nil
	}
	rows := make([][]string, 0, (len(s.Cells)+cols-1)/cols)
	for i := 0; i < len(s.Cells); i += cols {
		row := make([]string, cols)
		copy(row, s.Cells[i:min(i+cols, len(s.Cells))])
		rows = append(rows, row)
	}
	return rows
}

// Lines returns the text lines of a Title or Canvas section. A sized
// canvas always yields exactly Height lines.
func (s Section) Lines() []string {
	switch s.Kind {
	case Title:
		return s.Cells
	case Canvas:
		if s.Height == 0 {
			return s.Cells
		}
		lines := make([]string, s.Height)
		copy(lines, s.Cells)
		return lines
	}
	return nil
}

// Validate reports configuration errors that must be rejected before
// layout: a canvas with only one dimension, negative sizes, or a header
// table whose cells do not fill whole rows.
func (s Section) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("section: %s has negative size %dx%d", s.Kind, s.Width, s.Height)
	}
	switch s.Kind {
	case Canvas:
		if (s.Width == 0) != (s.Height == 0) {
			return fmt.Errorf("%w (got %dx%d)", ErrCanvasDimensions, s.Width, s.Height)
		}
	case Headers, Data:
		if n := len(s.Headers); n > 0 && len(s.Cells)%n != 0 {
			return fmt.Errorf("section: %d cells do not fill rows of %d columns", len(s.Cells), n)
		}
	}
	return nil
}
