package layout

import (
	"fmt"
	"strings"
)

// Strategy selects which columns absorb the remainder when a width
// constraint changes the total and the difference does not divide evenly
// across the columns.
type Strategy int

const (
	// StrategyAuto picks StrategyFirst in spreadsheet mode and
	// StrategyLast otherwise.
	StrategyAuto Strategy = iota
	// StrategyFirst gives remainder units to the leading columns.
	StrategyFirst
	// StrategyLast gives remainder units to the trailing columns.
	StrategyLast
	// StrategyDistributed spaces remainder units evenly across the row.
	StrategyDistributed
	// StrategyCenter gives remainder units to the middle columns.
	StrategyCenter
)

var strategyNames = map[Strategy]string{
	StrategyAuto:        "auto",
	StrategyFirst:       "first",
	StrategyLast:        "last",
	StrategyDistributed: "distributed",
	StrategyCenter:      "center",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name. The empty string is StrategyAuto.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyAuto, nil
	}
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return StrategyAuto, fmt.Errorf("layout: unknown extra-space strategy %q", name)
}

// resolve replaces StrategyAuto with the mode-dependent default.
func (s Strategy) resolve(spreadsheet bool) Strategy {
	if s != StrategyAuto {
		return s
	}
	if spreadsheet {
		return StrategyFirst
	}
	return StrategyLast
}

// remainderColumns returns the r column indices (r <= n) that receive one
// extra unit.
func (s Strategy) remainderColumns(n, r int) []int {
	idx := make([]int, 0, r)
	switch s {
	case StrategyLast:
		for i := n - r; i < n; i++ {
			idx = append(idx, i)
		}
	case StrategyCenter:
		start := (n - r) / 2
		for i := start; i < start+r; i++ {
			idx = append(idx, i)
		}
	case StrategyDistributed:
		// Midpoints of r equal slices of [0, n) are distinct when r <= n.
		for k := 0; k < r; k++ {
			idx = append(idx, (2*k+1)*n/(2*r))
		}
	default:
		for i := 0; i < r; i++ {
			idx = append(idx, i)
		}
	}
	return idx
}

// priority returns every column index in the order the strategy prefers
// to take space from when a column cannot shrink any further.
func (s Strategy) priority(n int) []int {
	idx := make([]int, 0, n)
	switch s {
	case StrategyLast:
		for i := n - 1; i >= 0; i-- {
			idx = append(idx, i)
		}
	case StrategyCenter:
		mid := (n - 1) / 2
		idx = append(idx, mid)
		for d := 1; len(idx) < n; d++ {
			if mid+d < n {
				idx = append(idx, mid+d)
			}
			if mid-d >= 0 {
				idx = append(idx, mid-d)
			}
		}
	default:
		for i := 0; i < n; i++ {
			idx = append(idx, i)
		}
	}
	return idx
}

// Distribute adds delta (which may be negative) to widths in place. Every
// column receives delta/len(widths); the remainder goes one unit per
// column to the columns the strategy selects. No column is shrunk below
// minWidth: a shortfall is taken from the other columns in strategy
// order, one unit at a time. The sum of widths changes by exactly delta
// unless every column is already at minWidth.
func Distribute(widths []int, delta int, s Strategy, minWidth int) {
	n := len(widths)
	if n == 0 || delta == 0 {
		return
	}
	base, rem := delta/n, delta%n
	unit := 1
	if rem < 0 {
		unit, rem = -1, -rem
	}
	for i := range widths {
		widths[i] += base
	}
	for _, i := range s.remainderColumns(n, rem) {
		widths[i] += unit
	}
	if delta > 0 {
		return
	}

	short := 0
	for i := range widths {
		if widths[i] < minWidth {
			short += minWidth - widths[i]
			widths[i] = minWidth
		}
	}
	order := s.priority(n)
	for short > 0 {
		progressed := false
		for _, i := range order {
			if short == 0 {
				break
			}
			if widths[i] > minWidth {
				widths[i]--
				short--
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// Proportional adds extra (>= 0) to widths in proportion to each width.
// The rounding remainder goes to the last column. When every width is
// zero the extra is split evenly.
func Proportional(widths []int, extra int) {
	n := len(widths)
	if n == 0 || extra <= 0 {
		return
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	given := 0
	for i := range widths {
		var add int
		if total > 0 {
			add = extra * widths[i] / total
		} else {
			add = extra / n
		}
		widths[i] += add
		given += add
	}
	widths[n-1] += extra - given
}
