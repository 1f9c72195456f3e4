package layout

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
)

// RuleKind names a horizontal border line.
type RuleKind int

const (
	RuleTop RuleKind = iota
	RuleBottom
	RuleSection
	RuleHeader
	RuleRow
)

// Rule is a resolved horizontal line: a run pattern tiled across each
// column, the junctions at both outer edges, and the junction drawn at
// every column boundary (unset when no column separator touches the line).
type Rule struct {
	Kind  RuleKind
	Left  theme.Pattern
	Run   theme.Pattern
	Right theme.Pattern
	Cross theme.Glyph
}

// RowCount is the number of output lines the rule occupies: the tallest of
// its contributing patterns.
func (r Rule) RowCount() int {
	n := max(r.Left.RowCount(), r.Run.RowCount(), r.Right.RowCount())
	if p, ok := r.Cross.Get(); ok {
		n = max(n, p.RowCount())
	}
	return n
}

// NewRule resolves the patterns of a rule. above and below report whether
// a table (and therefore column separators) touches the line from that
// side; columns is the grid's column count.
func NewRule(th theme.Theme, kind RuleKind, above, below bool, columns int) Rule {
	r := Rule{Kind: kind}
	var cross theme.JunctionKind
	hasCross := columns > 1
	switch kind {
	case RuleTop:
		r.Left, r.Run, r.Right = th.Junction(theme.TopLeft), th.Edge(theme.Top), th.Junction(theme.TopRight)
		cross, hasCross = theme.TopColumn, hasCross && below
	case RuleBottom:
		r.Left, r.Run, r.Right = th.Junction(theme.BottomLeft), th.Edge(theme.Bottom), th.Junction(theme.BottomRight)
		cross, hasCross = theme.BottomColumn, hasCross && above
	case RuleHeader:
		r.Left, r.Run, r.Right = th.Junction(theme.HeaderLeft), th.Divider(theme.HeaderDivider), th.Junction(theme.HeaderRight)
		cross, hasCross = theme.HeaderCross, hasCross && (above || below)
	case RuleRow:
		r.Left, r.Run, r.Right = th.Junction(theme.RowLeft), th.Divider(theme.RowDivider), th.Junction(theme.RowRight)
		cross, hasCross = theme.RowCross, hasCross && (above || below)
	default:
		r.Left, r.Run, r.Right = th.Junction(theme.SectionLeft), th.Divider(theme.SectionDivider), th.Junction(theme.SectionRight)
		switch {
		case above && below:
			cross = theme.SectionCross
		case above:
			cross = theme.SectionUp
		case below:
			cross = theme.SectionDown
		default:
			hasCross = false
		}
	}
	if hasCross {
		r.Cross = theme.Some(th.Junction(cross))
	}
	return r
}

// BlockKind discriminates the vertical pieces of a box.
type BlockKind int

const (
	// BlockRule is a horizontal border line group.
	BlockRule BlockKind = iota
	// BlockContent is the content lines of one section.
	BlockContent
)

// Block is one vertical piece of the rendered box, in output order.
type Block struct {
	Kind    BlockKind
	Rule    Rule // BlockRule only
	Section int  // index of the owning section
	Offset  int  // first output line
	Lines   int
}

// plan lays the sections out vertically: top rule, section content with
// the rules between sections, bottom rule. Offsets are assigned in order.
func plan(sections []section.Section, th theme.Theme, columns int) []Block {
	var blocks []Block
	add := func(b Block) {
		if n := len(blocks); n > 0 {
			b.Offset = blocks[n-1].Offset + blocks[n-1].Lines
		}
		blocks = append(blocks, b)
	}
	addRule := func(kind RuleKind, above, below bool, owner int) {
		r := NewRule(th, kind, above, below, columns)
		add(Block{Kind: BlockRule, Rule: r, Section: owner, Lines: r.RowCount()})
	}
	isTable := func(i int) bool {
		return i >= 0 && i < len(sections) && sections[i].IsTable()
	}

	addRule(RuleTop, false, isTable(0), -1)
	for i, s := range sections {
		if i > 0 && s.Kind != section.Divider && sections[i-1].Kind != section.Divider {
			kind := RuleSection
			if sections[i-1].Kind == section.Headers && s.Kind == section.Data && len(s.Headers) == 0 {
				kind = RuleHeader
			}
			addRule(kind, isTable(i-1), isTable(i), i)
		}
		if s.Kind == section.Divider {
			addRule(RuleSection, isTable(i-1), isTable(i+1), i)
			continue
		}
		add(Block{Kind: BlockContent, Section: i, Lines: contentLines(s, th, columns)})
	}
	addRule(RuleBottom, isTable(len(sections)-1), false, -1)
	return blocks
}

// contentLines counts the output lines of a non-divider section,
// including the header and row rules inside a Data section. A title's
// margin is horizontal only: one line per title line.
func contentLines(s section.Section, th theme.Theme, columns int) int {
	switch s.Kind {
	case section.Title, section.Canvas:
		return len(s.Lines())
	case section.Headers:
		return 1
	case section.Data:
		rows := len(s.Rows())
		n := rows
		if len(s.Headers) > 0 {
			n++
			if rows > 0 {
				n += NewRule(th, RuleHeader, true, true, columns).RowCount()
			}
		}
		if th.RowLines && rows > 1 {
			n += (rows - 1) * NewRule(th, RuleRow, true, true, columns).RowCount()
		}
		return max(n, 1)
	}
	return 0
}
