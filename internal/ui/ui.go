// Package ui renders the short messages bak-rotate prints on stdout.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	Error   = lipgloss.NewStyle().Foreground(red).Bold(true)
	Success = lipgloss.NewStyle().Foreground(green)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// no colours when piped or redirected
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Errorf prints "ERROR: <message>".
func Errorf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", Error.Render("ERROR:"), fmt.Sprintf(format, a...))
}

// Warnf prints "WARNING: <message>".
func Warnf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", Warning.Render("WARNING:"), fmt.Sprintf(format, a...))
}

// Arrow renders "src → dst" with a dim arrow.
func Arrow(src, dst string) string {
	return src + " " + Dim.Render("→") + " " + dst
}
