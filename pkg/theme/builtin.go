package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thASCIITheme(),
		thSingleTheme(),
		thDoubleTheme(),
		thRoundedTheme(),
		thHeavyTheme(),
		thDashedTheme(),
		thBlock3DTheme(),
		thNoneTheme(),
	} {
		thRegister(t)
	}
}

// thLineSet is the eleven glyphs a single-row box-drawing theme needs.
type thLineSet struct {
	h, v, cross                       string
	tl, tr, bl, br                    string
	teeDown, teeUp, teeRight, teeLeft string
}

// thFromLineSet expands a line set into a theme with every section
// junction set explicitly.
func thFromLineSet(name string, ls thLineSet) Theme {
	t := Theme{
		Name:       name,
		Horizontal: Some(Pattern(ls.h)),
		Vertical:   Some(Pattern(ls.v)),
		Cross:      Some(Pattern(ls.cross)),
	}
	t.Junctions[TopLeft] = Some(Pattern(ls.tl))
	t.Junctions[TopRight] = Some(Pattern(ls.tr))
	t.Junctions[BottomLeft] = Some(Pattern(ls.bl))
	t.Junctions[BottomRight] = Some(Pattern(ls.br))
	t.Junctions[TopColumn] = Some(Pattern(ls.teeDown))
	t.Junctions[BottomColumn] = Some(Pattern(ls.teeUp))
	t.Junctions[SectionLeft] = Some(Pattern(ls.teeRight))
	t.Junctions[SectionRight] = Some(Pattern(ls.teeLeft))
	t.Junctions[SectionCross] = Some(Pattern(ls.cross))
	t.Junctions[SectionDown] = Some(Pattern(ls.teeDown))
	t.Junctions[SectionUp] = Some(Pattern(ls.teeUp))
	return t
}

// thASCIITheme uses only 7-bit characters; header rows are underlined
// with '='.
func thASCIITheme() Theme {
	t := Theme{
		Name:       "ascii",
		Horizontal: Some("-"),
		Vertical:   Some("|"),
		Cross:      Some("+"),
	}
	return t.WithDivider(HeaderDivider, "=")
}

// thSingleTheme is the default light box-drawing theme. The header divider
// is doubled so the header row stands out.
func thSingleTheme() Theme {
	t := thFromLineSet("single", thLineSet{
		h: "─", v: "│", cross: "┼",
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		teeDown: "┬", teeUp: "┴", teeRight: "├", teeLeft: "┤",
	})
	return t.
		WithDivider(HeaderDivider, "═").
		WithJunction(HeaderLeft, "╞").
		WithJunction(HeaderRight, "╡").
		WithJunction(HeaderCross, "╪")
}

func thDoubleTheme() Theme {
	return thFromLineSet("double", thLineSet{
		h: "═", v: "║", cross: "╬",
		tl: "╔", tr: "╗", bl: "╚", br: "╝",
		teeDown: "╦", teeUp: "╩", teeRight: "╠", teeLeft: "╣",
	})
}

func thRoundedTheme() Theme {
	return thFromLineSet("rounded", thLineSet{
		h: "─", v: "│", cross: "┼",
		tl: "╭", tr: "╮", bl: "╰", br: "╯",
		teeDown: "┬", teeUp: "┴", teeRight: "├", teeLeft: "┤",
	})
}

func thHeavyTheme() Theme {
	return thFromLineSet("heavy", thLineSet{
		h: "━", v: "┃", cross: "╋",
		tl: "┏", tr: "┓", bl: "┗", br: "┛",
		teeDown: "┳", teeUp: "┻", teeRight: "┣", teeLeft: "┫",
	})
}

// thDashedTheme draws dashed lines with row dividers between data rows.
func thDashedTheme() Theme {
	t := thFromLineSet("dashed", thLineSet{
		h: "┄", v: "┆", cross: "┼",
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		teeDown: "┬", teeUp: "┴", teeRight: "├", teeLeft: "┤",
	})
	t.RowLines = true
	return t.WithDivider(RowDivider, "╌")
}

// thBlock3DTheme has two-row top and bottom edges that give the box a
// raised look:
//
//	╔════╤════╗
//	╟────┼────╢
//	║ a  │ b  ║
//	╟────┴────╢
//	╚═════════╝
func thBlock3DTheme() Theme {
	t := Theme{
		Name:       "block3d",
		Horizontal: Some("─"),
		Vertical:   Some("║"),
		Cross:      Some("┼"),
	}
	t.Edges[Top] = Some(Stack("═", "─"))
	t.Edges[Bottom] = Some(Stack("─", "═"))
	t.Dividers[ColumnDivider] = Some("│")
	t.Junctions[TopLeft] = Some(Stack("╔", "╟"))
	t.Junctions[TopRight] = Some(Stack("╗", "╢"))
	t.Junctions[TopColumn] = Some(Stack("╤", "┼"))
	t.Junctions[BottomLeft] = Some(Stack("╟", "╚"))
	t.Junctions[BottomRight] = Some(Stack("╢", "╝"))
	t.Junctions[BottomColumn] = Some(Stack("┴", "═"))
	t.Junctions[SectionLeft] = Some("╟")
	t.Junctions[SectionRight] = Some("╢")
	t.Junctions[SectionDown] = Some("┬")
	t.Junctions[SectionUp] = Some("┴")
	return t
}

// thNoneTheme draws every border as blank space.
func thNoneTheme() Theme {
	return Theme{
		Name:       "none",
		Horizontal: Some(" "),
		Vertical:   Some(" "),
		Cross:      Some(" "),
	}
}
