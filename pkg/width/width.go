// Package width measures how many terminal display columns a string
// occupies. The default measurer is a fast byte-level heuristic that works
// directly on UTF-8 leading bytes: 4-byte sequences are treated as emoji
// (2 columns), a curated set of 3-byte ranges is wide, variation selectors
// are zero-width and everything else is one column per codepoint.
//
// The heuristic is intentionally approximate. It is not an implementation
// of Unicode East Asian Width or grapheme clustering; combining marks count
// as one column and some emoji sequences will measure wider than a terminal
// draws them. Callers that need closer terminal fidelity can pick one of the
// library-backed measurers in measurer.go.
package width

import (
	"go4.org/mem"
)

// ByteSequenceLength returns the length of the UTF-8 sequence introduced by
// first, using the classic leading-byte ranges. Continuation bytes are not
// special-cased: they fall into the 2-byte bucket.
func ByteSequenceLength(first byte) int {
	switch {
	case first < 0x80:
		return 1
	case first < 0xE0:
		return 2
	case first < 0xF0:
		return 3
	default:
		return 4
	}
}

// NextLen returns the byte length of the codepoint starting at offset i of
// m. A sequence truncated by the end of input is returned as one unit
// covering the remaining bytes, so stepping never leaves the input.
func NextLen(m mem.RO, i int) int {
	if i >= m.Len() {
		return 0
	}
	n := ByteSequenceLength(m.At(i))
	if rem := m.Len() - i; n > rem {
		return rem
	}
	return n
}

// DisplayWidth returns the number of display columns m occupies.
//
// A leading byte that promises more continuation bytes than remain is
// treated as malformed input: each remaining byte counts as one column.
func DisplayWidth(m mem.RO) int {
	w := 0
	for i := 0; i < m.Len(); {
		n := ByteSequenceLength(m.At(i))
		if rem := m.Len() - i; n > rem {
			return w + rem
		}
		w += sequenceWidth(m, i, n)
		i += n
	}
	return w
}

// StringWidth is DisplayWidth for a string.
func StringWidth(s string) int {
	return DisplayWidth(mem.S(s))
}

// BytesWidth is DisplayWidth for a byte slice.
func BytesWidth(b []byte) int {
	return DisplayWidth(mem.B(b))
}

// sequenceWidth measures the complete n-byte sequence at offset i.
func sequenceWidth(m mem.RO, i, n int) int {
	switch n {
	case 4:
		return 2
	case 3:
		cp := rune(m.At(i)&0x0F)<<12 | rune(m.At(i+1)&0x3F)<<6 | rune(m.At(i+2)&0x3F)
		return bmpWidth(cp)
	default:
		return 1
	}
}

// bmpWidth classifies a codepoint encoded as a 3-byte sequence.
func bmpWidth(cp rune) int {
	if isVariationSelector(cp) {
		return 0
	}
	if isWide(cp) {
		return 2
	}
	return 1
}

func isVariationSelector(cp rune) bool {
	return cp >= 0xFE00 && cp <= 0xFE0F
}

// runeRange is an inclusive codepoint range.
type runeRange struct {
	lo, hi rune
}

// wideRanges lists the 3-byte codepoints drawn two columns wide: CJK
// scripts, Hangul, fullwidth forms and the BMP symbols that default to
// emoji presentation. Sorted by lo for binary search.
var wideRanges = []runeRange{
	{0x1100, 0x115F}, // Hangul Jamo initial consonants
	{0x231A, 0x231B}, // watch, hourglass
	{0x2329, 0x232A}, // angle brackets
	{0x23E9, 0x23EC},
	{0x23F0, 0x23F0},
	{0x23F3, 0x23F3},
	{0x25FD, 0x25FE},
	{0x2614, 0x2615},
	{0x2648, 0x2653}, // zodiac
	{0x267F, 0x267F},
	{0x2693, 0x2693},
	{0x26A1, 0x26A1},
	{0x26AA, 0x26AB},
	{0x26BD, 0x26BE},
	{0x26C4, 0x26C5},
	{0x26CE, 0x26CE},
	{0x26D4, 0x26D4},
	{0x26EA, 0x26EA},
	{0x26F2, 0x26F3},
	{0x26F5, 0x26F5},
	{0x26FA, 0x26FA},
	{0x26FD, 0x26FD},
	{0x2705, 0x2705},
	{0x270A, 0x270B},
	{0x2728, 0x2728},
	{0x274C, 0x274C},
	{0x274E, 0x274E},
	{0x2753, 0x2755},
	{0x2757, 0x2757},
	{0x2795, 0x2797},
	{0x27B0, 0x27B0},
	{0x27BF, 0x27BF},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	{0x2E80, 0x303E}, // CJK radicals, ideographic description, CJK punctuation
	{0x3041, 0x33FF}, // Hiragana, Katakana, Bopomofo, CJK compatibility
	{0x3400, 0x4DBF}, // CJK extension A
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xA000, 0xA4CF}, // Yi
	{0xA960, 0xA97F}, // Hangul Jamo extended A
	{0xAC00, 0xD7A3}, // Hangul syllables
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFE10, 0xFE19}, // vertical forms
	{0xFE30, 0xFE6F}, // CJK compatibility forms, small form variants
	{0xFF00, 0xFF60}, // fullwidth forms
	{0xFFE0, 0xFFE6},
}

func isWide(cp rune) bool {
	lo, hi := 0, len(wideRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := wideRanges[mid]
		switch {
		case cp < r.lo:
			hi = mid - 1
		case cp > r.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}
