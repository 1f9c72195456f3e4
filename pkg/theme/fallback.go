package theme

// Hard defaults at the end of every fallback chain.
const (
	DefaultHorizontal Pattern = "-"
	DefaultVertical   Pattern = "|"
	DefaultJunction   Pattern = "+"
)

// Edge resolves an outer edge: the side's own glyph, then the simple-mode
// Horizontal (top, bottom) or Vertical (left, right), then the ASCII default.
func (t Theme) Edge(side Side) Pattern {
	if p, ok := t.Edges[side].Get(); ok {
		return p
	}
	if side == Top || side == Bottom {
		return t.Horizontal.Or(DefaultHorizontal)
	}
	return t.Vertical.Or(DefaultVertical)
}

// Divider resolves an interior line. Row dividers fall back to header
// dividers, header dividers to section dividers, and section dividers to
// the simple-mode Horizontal line. The column separator falls back to
// Vertical.
func (t Theme) Divider(kind DividerKind) Pattern {
	if kind == ColumnDivider {
		return t.Dividers[ColumnDivider].Or(t.Vertical.Or(DefaultVertical))
	}
	for k, ok := kind, true; ok; k, ok = k.parent() {
		if p, set := t.Dividers[k].Get(); set {
			return p
		}
	}
	return t.Horizontal.Or(DefaultHorizontal)
}

// Junction resolves an intersection glyph through its fallback chain,
// ending at the simple-mode Cross and then DefaultJunction.
func (t Theme) Junction(kind JunctionKind) Pattern {
	for k, ok := kind, true; ok; k, ok = k.parent() {
		if p, set := t.Junctions[k].Get(); set {
			return p
		}
	}
	return t.Cross.Or(DefaultJunction)
}

// parent returns the next, less specific divider in the chain.
func (d DividerKind) parent() (DividerKind, bool) {
	switch d {
	case RowDivider:
		return HeaderDivider, true
	case HeaderDivider:
		return SectionDivider, true
	}
	return 0, false
}

// parent returns the semantically nearest junction to try when k is unset.
func (k JunctionKind) parent() (JunctionKind, bool) {
	switch k {
	case RowLeft:
		return HeaderLeft, true
	case RowRight:
		return HeaderRight, true
	case RowCross:
		return HeaderCross, true
	case HeaderLeft:
		return SectionLeft, true
	case HeaderRight:
		return SectionRight, true
	case HeaderCross:
		return SectionCross, true
	case SectionDown, SectionUp:
		return SectionCross, true
	}
	return 0, false
}
