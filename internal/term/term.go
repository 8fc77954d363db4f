// Package term provides color state and terminal detection.
//
// Colors are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled the variables are empty strings,
// making string concatenation a no-op. The lipgloss styles follow the same
// switch through the lipgloss color profile.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"github.com/backmassage/batchrename/internal/config"
)

// ANSI color sequences. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// Styles used for table cells.
var (
	Good    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	Caution = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Configure resolves the color mode and sets the package-level sequences and
// the lipgloss color profile. Call once during startup.
func Configure(mode config.ColorMode) {
	if !resolve(mode) {
		lipgloss.SetColorProfile(termenv.Ascii)
		Red, Green, Yellow, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", ""
		return
	}

	profile := termenv.NewOutput(os.Stdout).ColorProfile()
	if profile == termenv.Ascii {
		// Forced on (--color always) while stdout is not a TTY.
		profile = termenv.ANSI
	}
	lipgloss.SetColorProfile(profile)

	Red = bold(profile, "9")
	Green = bold(profile, "10")
	Yellow = bold(profile, "11")
	Blue = bold(profile, "12")
	Cyan = bold(profile, "14")
	Magenta = bold(profile, "13")
	NC = termenv.CSI + termenv.ResetSeq + "m"
}

// bold returns the SGR sequence for a bold foreground color in profile.
func bold(p termenv.Profile, color string) string {
	return termenv.CSI + termenv.BoldSeq + ";" + p.Color(color).Sequence(false) + "m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
