// Package console provides a line-oriented terminal connection with optional ANSI colour.
package console

import (
	"fmt"
	"strings"
)

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Painter applies ANSI styles when enabled and passes text through unchanged otherwise.
type Painter struct {
	Enabled bool
}

// Paint wraps text with style and a reset suffix.
//
// Precondition: style must be a valid ANSI escape sequence.
// Postcondition: Returns text unchanged when p is disabled.
func (p Painter) Paint(style, text string) string {
	if !p.Enabled {
		return text
	}
	return style + text + Reset
}

// Paintf formats and paints in one step.
func (p Painter) Paintf(style, format string, args ...any) string {
	return p.Paint(style, fmt.Sprintf(format, args...))
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns s with all \033[...m sequences removed.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
