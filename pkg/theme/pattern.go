package theme

import "strings"

// RowSeparator joins the rows of a multi-row Pattern.
const RowSeparator = "\n"

// Pattern is a glyph that is tiled horizontally to fill a run, and that
// may be several rows tall. Row i of every pattern on a border line is
// drawn on the i-th output line of that border.
type Pattern string

// Stack builds a multi-row pattern from its rows, top first.
func Stack(rows ...string) Pattern {
	return Pattern(strings.Join(rows, RowSeparator))
}

// Rows splits p into its rows. A pattern always has at least one row,
// possibly empty.
func (p Pattern) Rows() []string {
	return strings.Split(string(p), RowSeparator)
}

// RowCount returns the number of rows in p.
func (p Pattern) RowCount() int {
	return strings.Count(string(p), RowSeparator) + 1
}

// FirstRow returns the top row, which is the row that determines the
// pattern's width in layout calculations.
func (p Pattern) FirstRow() string {
	if i := strings.Index(string(p), RowSeparator); i >= 0 {
		return string(p[:i])
	}
	return string(p)
}

// Glyph is an optional Pattern. The zero value is unset.
type Glyph struct {
	pattern Pattern
	set     bool
}

// Some returns a set Glyph holding p.
func Some(p Pattern) Glyph {
	return Glyph{pattern: p, set: true}
}

// Get returns the pattern and whether it is set.
func (g Glyph) Get() (Pattern, bool) {
	return g.pattern, g.set
}

// IsSet reports whether g holds a pattern.
func (g Glyph) IsSet() bool {
	return g.set
}

// Or returns g's pattern if set, otherwise def.
func (g Glyph) Or(def Pattern) Pattern {
	if g.set {
		return g.pattern
	}
	return def
}
