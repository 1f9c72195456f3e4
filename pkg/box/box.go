package box

import (
	"fmt"
	"sync"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/render"
	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
)

// Box is a laid-out box. Its rendered output is computed on first use and
// reused until a mutation invalidates it. A Box is safe for concurrent use.
type Box struct {
	mu       sync.Mutex
	sections []section.Section
	theme    theme.Theme
	cons     layout.Constraints
	opts     render.Options
	cache    *layout.Cache

	info     layout.Info
	rendered string
	valid    bool
}

// layout recalculates the geometry. Callers hold mu or own bx exclusively.
func (bx *Box) layout() (layout.Info, error) {
	var (
		info layout.Info
		err  error
	)
	if bx.cache != nil {
		info, err = bx.cache.Calculate(bx.sections, bx.theme, bx.cons)
	} else {
		info, err = layout.Calculate(bx.sections, bx.theme, bx.cons)
	}
	if err != nil {
		return layout.Info{}, err
	}
	bx.info = info
	return info, nil
}

// refresh re-renders when the cached output is stale. Callers hold mu.
func (bx *Box) refresh() error {
	if bx.valid {
		return nil
	}
	info, err := bx.layout()
	if err != nil {
		return err
	}
	bx.rendered = render.String(bx.sections, bx.theme, info, bx.opts)
	bx.valid = true
	return nil
}

// String returns the rendered box. Mutations validate their input, so the
// content of a built Box always lays out.
func (bx *Box) String() string {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	if err := bx.refresh(); err != nil {
		return ""
	}
	return bx.rendered
}

// Render writes the rendered box to w.
func (bx *Box) Render(w render.Writer) error {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	if err := bx.refresh(); err != nil {
		return fmt.Errorf("box: %w", err)
	}
	if _, err := w.WriteString(bx.rendered); err != nil {
		return fmt.Errorf("box: %w", err)
	}
	return nil
}

// Info returns the current layout.
func (bx *Box) Info() layout.Info {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	_ = bx.refresh()
	return bx.info
}

// Sections returns a copy of the box content.
func (bx *Box) Sections() []section.Section {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	return append([]section.Section(nil), bx.sections...)
}

// Invalidate drops the cached output so the next render recomputes it.
func (bx *Box) Invalidate() {
	bx.mu.Lock()
	bx.valid = false
	bx.mu.Unlock()
}

// SetCell replaces one data cell of a table section. row and col count
// from zero within the section's data rows.
func (bx *Box) SetCell(sec, row, col int, text string) error {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	s, err := bx.section(sec, section.Data)
	if err != nil {
		return err
	}
	cols := s.ColumnCount()
	i := row*cols + col
	if row < 0 || col < 0 || col >= cols || i >= len(s.Cells) {
		return fmt.Errorf("box: cell (%d,%d) out of range in section %d", row, col, sec)
	}
	cells := append([]string(nil), s.Cells...)
	cells[i] = text
	bx.sections[sec].Cells = cells
	bx.valid = false
	return nil
}

// AppendRow adds a data row to a table section.
func (bx *Box) AppendRow(sec int, cells ...string) error {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	s, err := bx.section(sec, section.Data)
	if err != nil {
		return err
	}
	next, err := appendRow(s, cells)
	if err != nil {
		return err
	}
	bx.sections[sec] = next
	bx.valid = false
	return nil
}

// SetCanvasLine replaces one line of a canvas section. A sized canvas
// accepts any line below its height; an unsized one only replaces
// existing lines.
func (bx *Box) SetCanvasLine(sec, line int, text string) error {
	bx.mu.Lock()
	defer bx.mu.Unlock()
	s, err := bx.section(sec, section.Canvas)
	if err != nil {
		return err
	}
	limit := len(s.Cells)
	if s.Height > 0 {
		limit = s.Height
	}
	if line < 0 || line >= limit {
		return fmt.Errorf("box: canvas line %d out of range in section %d", line, sec)
	}
	cells := make([]string, max(len(s.Cells), line+1))
	copy(cells, s.Cells)
	cells[line] = text
	bx.sections[sec].Cells = cells
	bx.valid = false
	return nil
}

func (bx *Box) section(i int, kind section.Kind) (section.Section, error) {
	if i < 0 || i >= len(bx.sections) {
		return section.Section{}, fmt.Errorf("box: no section %d", i)
	}
	s := bx.sections[i]
	if s.Kind != kind {
		return section.Section{}, fmt.Errorf("box: section %d is %s, not %s", i, s.Kind, kind)
	}
	return s, nil
}
