package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"gitlab.com/tinyland/lab/boxkit/pkg/section"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
)

// Cache stores previously computed layouts so that boxes with identical
// content, theme and constraints are laid out once. It is safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Info
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Info),
	}
}

// Calculate returns the cached Info for the inputs, computing and storing
// it on a miss. Errors are not cached.
func (c *Cache) Calculate(sections []section.Section, th theme.Theme, cons Constraints) (Info, error) {
	key := makeKey(sections, th, cons)
	c.mu.RLock()
	info, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return info.clone(), nil
	}
	info, err := Calculate(sections, th, cons)
	if err != nil {
		return Info{}, err
	}
	c.mu.Lock()
	c.entries[key] = info
	c.mu.Unlock()
	return info.clone(), nil
}

// Invalidate clears all cached entries.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]Info)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// clone copies the slices so callers cannot mutate the cache.
func (in Info) clone() Info {
	out := in
	out.ColumnWidths = append([]int(nil), in.ColumnWidths...)
	out.SectionOffsets = append([]int(nil), in.SectionOffsets...)
	out.Blocks = append([]Block(nil), in.Blocks...)
	return out
}

// makeKey hashes a deterministic serialization of the layout inputs.
func makeKey(sections []section.Section, th theme.Theme, c Constraints) string {
	h := sha256.New()
	for _, s := range sections {
		fmt.Fprintf(h, "%d|%q|%q|%d|%d|%d|%d;", s.Kind, s.Headers, s.Cells, s.Columns, s.Align, s.Width, s.Height)
	}
	fmt.Fprintf(h, "%#v;", th)
	fmt.Fprintf(h, "%s|%s|%d|%d|%t|%p",
		constraintKey(c.Width), constraintKey(c.Height),
		c.CellPadding, c.Strategy, c.Spreadsheet, c.measurer())
	return hex.EncodeToString(h.Sum(nil))
}

func constraintKey(c Constraint) string {
	if c == nil {
		return Auto{}.String()
	}
	return c.String()
}
