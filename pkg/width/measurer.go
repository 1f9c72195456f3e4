package width

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"go4.org/mem"
)

// Measurer reports the display width of a string in terminal columns.
type Measurer interface {
	Width(s string) int
}

// MeasurerFunc adapts a plain function to the Measurer interface.
type MeasurerFunc func(string) int

// Width calls f(s).
func (f MeasurerFunc) Width(s string) int { return f(s) }

var (
	// Heuristic is the default leading-byte measurer (see DisplayWidth).
	Heuristic Measurer = heuristicMeasurer{}

	// ANSI ignores escape sequences and clusters graphemes, matching what
	// lipgloss and the charmbracelet stack report.
	ANSI Measurer = MeasurerFunc(ansi.StringWidth)

	// Grapheme measures by extended grapheme cluster via uniseg.
	Grapheme Measurer = MeasurerFunc(uniseg.StringWidth)

	// EastAsian applies UAX #11 widths rune by rune via go-runewidth.
	EastAsian Measurer = MeasurerFunc(runewidth.StringWidth)
)

type heuristicMeasurer struct{}

func (heuristicMeasurer) Width(s string) int { return StringWidth(s) }

var measurers = map[string]Measurer{
	"heuristic": Heuristic,
	"ansi":      ANSI,
	"grapheme":  Grapheme,
	"runewidth": EastAsian,
}

// Lookup returns the measurer registered under name. The empty name selects
// Heuristic.
func Lookup(name string) (Measurer, error) {
	if name == "" {
		return Heuristic, nil
	}
	m, ok := measurers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("width: unknown measurer %q (known: %s)", name, strings.Join(MeasurerNames(), ", "))
	}
	return m, nil
}

// MeasurerNames returns the registered measurer names sorted alphabetically.
func MeasurerNames() []string {
	names := make([]string, 0, len(measurers))
	for name := range measurers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prefix returns the longest prefix of s made of whole codepoints whose
// width under m does not exceed maxWidth, together with that width.
func Prefix(m Measurer, s string, maxWidth int) (string, int) {
	if maxWidth <= 0 {
		return "", 0
	}
	ro := mem.S(s)
	if _, ok := m.(heuristicMeasurer); ok {
		return heuristicPrefix(ro, s, maxWidth)
	}
	end, w := 0, 0
	for i := 0; i < len(s); {
		n := NextLen(ro, i)
		cw := m.Width(s[:i+n])
		if cw > maxWidth {
			break
		}
		i += n
		end, w = i, cw
	}
	return s[:end], w
}

// heuristicPrefix is Prefix for the Heuristic measurer. Its widths add up
// codepoint by codepoint, so one pass suffices.
func heuristicPrefix(ro mem.RO, s string, maxWidth int) (string, int) {
	end, w := 0, 0
	for i := 0; i < len(s); {
		n := NextLen(ro, i)
		cw := w + DisplayWidth(ro.Slice(i, i+n))
		if cw > maxWidth {
			break
		}
		i += n
		end, w = i, cw
	}
	return s[:end], w
}

// Fit cuts s to at most width columns and pads it with spaces to exactly
// width. A wide glyph that straddles the limit is dropped and replaced by
// padding.
func Fit(m Measurer, s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := m.Width(s)
	if w > width {
		s, w = Prefix(m, s, width)
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
