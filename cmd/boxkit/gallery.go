package main

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
)

// galleryGap is the space between sample boxes on one line.
const galleryGap = 2

// sample renders the gallery box for one theme.
func sample(name string) string {
	bx, err := box.New().
		ThemeName(name).
		Title(name).
		Data([]string{"Key", "Value"},
			[]string{"width", "42"},
			[]string{"wide", "中文"},
		).
		Build()
	if err != nil {
		return name + ": " + err.Error()
	}
	return bx.String()
}

// gallery lays out one sample box per theme, left to right, starting a new
// row whenever the next box would pass cols. cols <= 0 means one box per
// row.
func gallery(names []string, cols int) string {
	cell := lipgloss.NewStyle().MarginRight(galleryGap)

	var rows, line []string
	lineWidth := 0
	flush := func() {
		if len(line) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineWidth = nil, 0
		}
	}
	for _, name := range names {
		if _, ok := theme.Lookup(name); !ok {
			continue
		}
		block := cell.Render(sample(name))
		w := lipgloss.Width(block)
		if cols <= 0 || (len(line) > 0 && lineWidth+w > cols) {
			flush()
		}
		line = append(line, block)
		lineWidth += w
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
