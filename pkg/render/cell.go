package render

import (
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/width"
)

// DefaultEllipsis marks a truncated cell.
const DefaultEllipsis = "..."

// Cell fits text into exactly w columns.
//
// Text that fits is aligned; centered text puts the odd column on the
// right. Text that does not fit keeps the longest whole-codepoint prefix
// that leaves room for the ellipsis. When w is too narrow to show at least
// one column of text plus the ellipsis, the cell is left blank.
func Cell(m width.Measurer, text string, w int, align section.Align, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	tw := m.Width(text)
	if tw <= w {
		gap := w - tw
		switch align {
		case section.AlignRight:
			return spaces(gap) + text
		case section.AlignCenter:
			left := gap / 2
			return spaces(left) + text + spaces(gap-left)
		default:
			return text + spaces(gap)
		}
	}

	ew := m.Width(ellipsis)
	if w < ew+1 {
		return spaces(w)
	}
	prefix, pw := width.Prefix(m, text, w-ew)
	return prefix + ellipsis + spaces(w-pw-ew)
}

// Tile repeats pattern until it fills exactly w columns. The last
// repetition is cut to the whole codepoints that fit and any column a wide
// glyph could not fill is a space. A pattern with no width tiles as blank.
func Tile(m width.Measurer, pattern string, w int) string {
	if w <= 0 {
		return ""
	}
	pw := m.Width(pattern)
	if pw <= 0 {
		return spaces(w)
	}
	var b strings.Builder
	n := w / pw
	b.Grow(n*len(pattern) + pw)
	for i := 0; i < n; i++ {
		b.WriteString(pattern)
	}
	if rest := w - n*pw; rest > 0 {
		part, used := width.Prefix(m, pattern, rest)
		b.WriteString(part)
		b.WriteString(spaces(rest - used))
	}
	return b.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
