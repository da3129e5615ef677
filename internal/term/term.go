// Package term provides color state, lipgloss styles, and terminal detection.
//
// Styles are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets the enabled
// state once during startup; when colors are disabled [Paint] returns its
// input untouched, so callers never have to branch on color themselves.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/imgnorm/internal/config"
)

// Level and accent styles.
var (
	Red     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Green   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Yellow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Blue    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Magenta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Cyan    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var enabled bool

// Configure resolves the color mode and records whether styles apply.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
}

// Paint renders s with style when colors are enabled and returns s
// unchanged otherwise.
func Paint(style lipgloss.Style, s string) string {
	if !enabled || s == "" {
		return s
	}
	return style.Render(s)
}

// resolve determines whether colors should be enabled. Auto mode only looks
// at stdout; the tool reads no environment variables.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout)
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
