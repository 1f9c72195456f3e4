// Package terminal answers the questions boxkit asks about where its
// output goes: how wide the terminal is, whether stdout is a terminal at
// all, and whether box-drawing characters will display.
//
// Detection is environment inspection only; it performs no terminal
// queries.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // Ghostty
	TermKitty              // Kitty
	TermWezTerm            // WezTerm
	TermITerm2             // iTerm2
	TermAlacritty          // Alacritty
	TermVTE                // GNOME Terminal, Tilix and other VTE terminals
	TermTmux               // tmux multiplexer
	TermScreen             // GNU Screen multiplexer
	TermVSCode             // VS Code integrated terminal
	TermEmacs              // Emacs vterm/eat
	TermLinux              // Linux virtual console
	TermDumb               // TERM=dumb, no cursor addressing or line drawing
	TermGeneric            // Unknown terminal with basic capabilities
)

// terminalNames maps Terminal values to human-readable strings.
var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermLinux:     "linux",
	TermDumb:      "dumb",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsBoxDrawing reports whether the terminal's font reliably covers
// the Unicode box-drawing block. The Linux console only maps a subset and
// a dumb terminal may not be a screen at all.
func (t Terminal) SupportsBoxDrawing() bool {
	switch t {
	case TermLinux, TermDumb:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables.
// Signals are checked in order of reliability:
//
//  1. TERM_PROGRAM env var (most terminals set this)
//  2. TERM env var (dumb, linux, xterm-ghostty, xterm-kitty, alacritty)
//  3. Terminal-specific vars (KITTY_WINDOW_ID, ITERM_SESSION_ID, etc.)
//  4. VTE_VERSION for VTE-based terminals
//  5. INSIDE_EMACS for emacs terminals
//  6. TMUX / STY for multiplexers
//  7. Fallback to TermGeneric
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	if term := os.Getenv("TERM"); term != "" {
		switch {
		case term == "dumb":
			return TermDumb
		case term == "linux":
			return TermLinux
		case term == "xterm-ghostty":
			return TermGhostty
		case term == "xterm-kitty":
			return TermKitty
		case strings.HasPrefix(term, "alacritty"):
			return TermAlacritty
		case strings.HasPrefix(term, "screen"):
			// GNU Screen sets TERM=screen or screen-256color; tmux
			// often does too, so STY confirms it.
			if os.Getenv("STY") != "" {
				return TermScreen
			}
		}
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return TermKitty
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return TermITerm2
	}
	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		return TermWezTerm
	}
	if os.Getenv("VTE_VERSION") != "" {
		return TermVTE
	}
	if os.Getenv("INSIDE_EMACS") != "" {
		return TermEmacs
	}

	// Multiplexers are checked late so the inner terminal wins.
	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	if os.Getenv("STY") != "" {
		return TermScreen
	}
	return TermGeneric
}

// Locale returns the effective character-type locale following POSIX
// precedence: LC_ALL, then LC_CTYPE, then LANG.
func Locale() string {
	for _, k := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// IsUTF8 reports whether the locale selects a UTF-8 codeset. An unset
// locale counts as UTF-8, the default of every current desktop.
func IsUTF8(locale string) bool {
	if locale == "" {
		return true
	}
	l := strings.ToLower(locale)
	return strings.Contains(l, "utf-8") || strings.Contains(l, "utf8")
}

// IsEastAsian reports whether the locale's language is Chinese, Japanese
// or Korean, where ambiguous-width characters are usually drawn wide.
func IsEastAsian(locale string) bool {
	l := strings.ToLower(locale)
	for _, p := range []string{"zh", "ja", "ko"} {
		if strings.HasPrefix(l, p) {
			return true
		}
	}
	return false
}
