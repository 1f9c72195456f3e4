package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Capabilities is the cached terminal summary for the current process.
type Capabilities struct {
	Term      Terminal // Detected terminal emulator
	Size      Size     // Terminal dimensions
	TTY       bool     // stdout is a terminal
	UTF8      bool     // locale selects UTF-8
	EastAsian bool     // locale is Chinese, Japanese or Korean
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection and caches the result.
// Safe to call from multiple goroutines; detection runs exactly once via
// sync.Once. Subsequent calls return the cached value.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

// IsTerminal reports whether f is attached to a terminal, including the
// Cygwin and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SuggestTheme names the builtin theme that will display correctly:
// "single" when box drawing is available, "ascii" otherwise.
func (c *Capabilities) SuggestTheme() string {
	if c.UTF8 && c.Term.SupportsBoxDrawing() {
		return "single"
	}
	return "ascii"
}

// SuggestMeasurer names the width measurer that best matches how the
// terminal will draw text.
func (c *Capabilities) SuggestMeasurer() string {
	if c.EastAsian {
		return "runewidth"
	}
	return "heuristic"
}

// detect performs the actual detection work.
func detect() *Capabilities {
	locale := Locale()
	return &Capabilities{
		Term:      Detect(),
		Size:      GetSize(),
		TTY:       IsTerminal(os.Stdout),
		UTF8:      IsUTF8(locale),
		EastAsian: IsEastAsian(locale),
	}
}
