// Package render draws a box from its sections, theme and computed layout.
//
// Output is built one line group at a time: a horizontal rule becomes as
// many lines as its tallest pattern has rows, and every content line is
// wrapped in the vertical edges. Each line is exactly Info.TotalWidth
// display columns wide; lines are joined by "\n" with no trailing newline.
package render

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/width"
)

// Writer is the sink Render writes to. *strings.Builder, *bytes.Buffer and
// *bufio.Writer all satisfy it.
type Writer interface {
	io.Writer
	io.StringWriter
}

// Options tune text measurement and truncation. The zero value uses the
// heuristic measurer and DefaultEllipsis.
type Options struct {
	Measurer width.Measurer
	Ellipsis string
}

// Render writes the box to w. The layout must have been calculated for the
// same sections and theme with the same measurer.
func Render(w Writer, sections []section.Section, th theme.Theme, info layout.Info, opts Options) error {
	for i, line := range Lines(sections, th, info, opts) {
		if i > 0 {
			if _, err := w.WriteString("\n"); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// String renders the box into a string.
func String(sections []section.Section, th theme.Theme, info layout.Info, opts Options) string {
	var b strings.Builder
	_ = Render(&b, sections, th, info, opts) // strings.Builder never fails
	return b.String()
}

// Lines renders the box as a slice of output lines.
func Lines(sections []section.Section, th theme.Theme, info layout.Info, opts Options) []string {
	blocks := info.Blocks
	if len(blocks) < 2 {
		return nil
	}
	r := newRenderer(th, info, opts)

	out := r.rule(blocks[0].Rule)
	var body []string
	for _, b := range blocks[1 : len(blocks)-1] {
		if b.Kind == layout.BlockRule {
			body = append(body, r.rule(b.Rule)...)
			continue
		}
		body = append(body, r.content(sections[b.Section])...)
	}
	out = append(out, r.fitHeight(body)...)
	return append(out, r.rule(blocks[len(blocks)-1].Rule)...)
}

type renderer struct {
	m        width.Measurer
	ellipsis string
	th       theme.Theme
	info     layout.Info

	left, right, sep []string
	// Column offsets of the vertical bar inside the left edge, right edge
	// and column separator. Rule junctions are drawn at these columns.
	leftBar, rightBar, sepBar int
	// line counts the content lines emitted so far; multi-row vertical
	// patterns cycle through their rows with it.
	line int
}

func newRenderer(th theme.Theme, info layout.Info, opts Options) *renderer {
	r := &renderer{
		m:        opts.Measurer,
		ellipsis: opts.Ellipsis,
		th:       th,
		info:     info,
		left:     th.Edge(theme.Left).Rows(),
		right:    th.Edge(theme.Right).Rows(),
		sep:      th.Divider(theme.ColumnDivider).Rows(),
	}
	if r.m == nil {
		r.m = width.Heuristic
	}
	r.leftBar = barOffset(r.m, cycle(r.left, 0))
	r.rightBar = barOffset(r.m, cycle(r.right, 0))
	r.sepBar = barOffset(r.m, cycle(r.sep, 0))
	if r.ellipsis == "" {
		r.ellipsis = DefaultEllipsis
	}
	return r
}

// rule renders a horizontal line group. Row i of every contributing
// pattern goes on output line i; a pattern with fewer rows contributes
// blank space on the extra lines.
func (r *renderer) rule(rl layout.Rule) []string {
	cross, hasCross := rl.Cross.Get()
	lines := make([]string, rl.RowCount())
	for i := range lines {
		run := rowOf(rl.Run, i)
		var b strings.Builder
		b.WriteString(r.junction(rowOf(rl.Left, i), run, r.info.LeftWidth, r.leftBar, false, true))
		for j, cw := range r.info.ColumnWidths {
			if j > 0 {
				if hasCross {
					b.WriteString(r.junction(rowOf(cross, i), run, r.info.SeparatorWidth, r.sepBar, true, true))
				} else {
					b.WriteString(Tile(r.m, run, r.info.SeparatorWidth))
				}
			}
			b.WriteString(Tile(r.m, run, cw))
		}
		b.WriteString(r.junction(rowOf(rl.Right, i), run, r.info.RightWidth, r.rightBar, true, false))
		lines[i] = b.String()
	}
	return lines
}

// junction places glyph at column off of a w-column span, so it sits over
// the vertical bar of the edge or separator below it. The rest of the span
// is the tiled run on the sides that face the interior and blank outside
// the box. An absent glyph row leaves the whole span blank.
func (r *renderer) junction(glyph, run string, w, off int, runBefore, runAfter bool) string {
	if glyph == "" {
		return spaces(w)
	}
	gw := r.m.Width(glyph)
	if gw >= w {
		return width.Fit(r.m, glyph, w)
	}
	off = min(off, w-gw)
	fill := func(n int, interior bool) string {
		if interior {
			return Tile(r.m, run, n)
		}
		return spaces(n)
	}
	return fill(off, runBefore) + glyph + fill(w-off-gw, runAfter)
}

func (r *renderer) content(s section.Section) []string {
	var out []string
	switch s.Kind {
	case section.Title:
		for _, line := range s.Lines() {
			out = append(out, r.wrap(r.title(line, s.Align)))
		}
	case section.Canvas:
		for _, line := range s.Lines() {
			out = append(out, r.wrap(width.Fit(r.m, line, r.info.ContentWidth)))
		}
	case section.Headers:
		out = append(out, r.row(s.Headers, s.Align))
	case section.Data:
		rows := s.Rows()
		if len(s.Headers) > 0 {
			out = append(out, r.row(s.Headers, s.Align))
			if len(rows) > 0 {
				out = append(out, r.rule(r.innerRule(layout.RuleHeader))...)
			}
		}
		for i, cells := range rows {
			if i > 0 && r.th.RowLines {
				out = append(out, r.rule(r.innerRule(layout.RuleRow))...)
			}
			out = append(out, r.row(cells, s.Align))
		}
		if len(out) == 0 {
			out = append(out, r.row(nil, s.Align))
		}
	}
	return out
}

func (r *renderer) innerRule(kind layout.RuleKind) layout.Rule {
	return layout.NewRule(r.th, kind, true, true, r.info.Columns())
}

// row renders one table row across every grid column. Missing cells are
// blank.
func (r *renderer) row(cells []string, align section.Align) string {
	k := r.line
	var b strings.Builder
	for j, cw := range r.info.ColumnWidths {
		if j > 0 {
			b.WriteString(width.Fit(r.m, cycle(r.sep, k), r.info.SeparatorWidth))
		}
		var text string
		if j < len(cells) {
			text = cells[j]
		}
		pad := min(r.info.CellPadding, cw/2)
		b.WriteString(spaces(pad))
		b.WriteString(Cell(r.m, text, cw-2*pad, align, r.ellipsis))
		b.WriteString(spaces(pad))
	}
	return r.wrap(b.String())
}

// title centers one title line inside the title margin.
func (r *renderer) title(text string, align section.Align) string {
	cw := r.info.ContentWidth
	margin := min(layout.TitleMargin/2, cw/2)
	return spaces(margin) + Cell(r.m, text, cw-2*margin, align, r.ellipsis) + spaces(margin)
}

// wrap adds the vertical edges to a content line.
func (r *renderer) wrap(inner string) string {
	k := r.line
	r.line++
	return width.Fit(r.m, cycle(r.left, k), r.info.LeftWidth) +
		inner +
		width.Fit(r.m, cycle(r.right, k), r.info.RightWidth)
}

// fitHeight clips the body to Info.ContentHeight or pads it with blank
// lines.
func (r *renderer) fitHeight(body []string) []string {
	h := r.info.ContentHeight
	if len(body) > h {
		return body[:h]
	}
	for len(body) < h {
		body = append(body, r.wrap(spaces(r.info.ContentWidth)))
	}
	return body
}

// barOffset is the display column of the first non-space glyph in a
// vertical pattern row, or 0 when the row is blank.
func barOffset(m width.Measurer, row string) int {
	trimmed := strings.TrimLeft(row, " ")
	if trimmed == "" {
		return 0
	}
	return m.Width(row[:len(row)-len(trimmed)])
}

func rowOf(p theme.Pattern, i int) string {
	rows := p.Rows()
	if i < len(rows) {
		return rows[i]
	}
	return ""
}

func cycle(rows []string, k int) string {
	if len(rows) == 0 {
		return ""
	}
	return rows[k%len(rows)]
}
