// Package output provides utilities for creating termenv.Output with consistent
// color profile and terminal width handling across the CLI.
package output

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is the separator width used when the writer is not a terminal.
const DefaultWidth = 80

// ColorProfile returns the color profile to use for terminal output.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Width returns the column count of the terminal behind w.
// COLUMNS is honoured for writers that are not terminals, then DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd()) //nolint:gosec // file descriptors fit in int
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}

// Separator returns a line of dashes spanning width columns.
func Separator(width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return strings.Repeat("-", width)
}
