// Package theme defines the glyphs a box is drawn with: outer edges,
// horizontal and vertical dividers, and the junctions where they meet.
//
// Every glyph is a Pattern, which may stack several rows for borders that
// are more than one text line tall. Any glyph may be left unset; the
// resolution methods (Edge, Divider, Junction) walk a fixed fallback chain
// so that every query yields some pattern.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Side names one of the four outer edges.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
	numSides
)

// DividerKind names one of the interior lines.
type DividerKind int

const (
	// SectionDivider separates two sections.
	SectionDivider DividerKind = iota
	// HeaderDivider separates a header row from its data rows.
	HeaderDivider
	// RowDivider separates two data rows (only drawn when RowLines is set).
	RowDivider
	// ColumnDivider is the vertical separator between table columns.
	ColumnDivider
	numDividers
)

// JunctionKind names an intersection of an edge with a divider or of two
// dividers.
type JunctionKind int

const (
	TopLeft JunctionKind = iota
	TopRight
	BottomLeft
	BottomRight
	// TopColumn is where the top edge meets a column separator.
	TopColumn
	// BottomColumn is where the bottom edge meets a column separator.
	BottomColumn
	SectionLeft
	SectionRight
	// SectionCross is a section divider crossing a column separator that
	// continues on both sides.
	SectionCross
	// SectionDown is a section divider with a column separator below only.
	SectionDown
	// SectionUp is a section divider with a column separator above only.
	SectionUp
	HeaderLeft
	HeaderRight
	HeaderCross
	RowLeft
	RowRight
	RowCross
	numJunctions
)

var sideNames = [numSides]string{"top", "bottom", "left", "right"}

var dividerNames = [numDividers]string{"section", "header", "row", "column"}

var junctionNames = [numJunctions]string{
	"top_left", "top_right", "bottom_left", "bottom_right",
	"top_column", "bottom_column",
	"section_left", "section_right", "section_cross", "section_down", "section_up",
	"header_left", "header_right", "header_cross",
	"row_left", "row_right", "row_cross",
}

func (s Side) String() string         { return sideNames[s] }
func (d DividerKind) String() string  { return dividerNames[d] }
func (j JunctionKind) String() string { return junctionNames[j] }

// Theme is a complete border description. The zero value is usable: every
// resolution falls through to the ASCII defaults.
type Theme struct {
	Name string

	// Simple-mode glyphs used when no specific edge, divider or junction
	// is set.
	Horizontal Glyph
	Vertical   Glyph
	Cross      Glyph

	Edges     [numSides]Glyph
	Dividers  [numDividers]Glyph
	Junctions [numJunctions]Glyph

	// RowLines draws a row divider between consecutive data rows.
	RowLines bool
}

// WithEdge returns a copy of t with side set to p.
func (t Theme) WithEdge(side Side, p Pattern) Theme {
	t.Edges[side] = Some(p)
	return t
}

// WithDivider returns a copy of t with the divider kind set to p.
func (t Theme) WithDivider(kind DividerKind, p Pattern) Theme {
	t.Dividers[kind] = Some(p)
	return t
}

// WithJunction returns a copy of t with the junction kind set to p.
func (t Theme) WithJunction(kind JunctionKind, p Pattern) Theme {
	t.Junctions[kind] = Some(p)
	return t
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}

	// thDefault is built once at init and never replaced, so a user theme
	// registered as "single" does not change it.
	thDefault Theme
)

func init() {
	thDefault = thSingleTheme()
	thRegisterBuiltins()
}

// Default returns the theme used when none is configured.
func Default() Theme {
	return thDefault
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	t, ok := Lookup(name)
	if !ok {
		return Default()
	}
	return t
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme (typically one loaded from a file) to the registry
// under its lowercase name, replacing any theme of the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
