// Package ui renders user-facing terminal output.
//
// Text is styled with lipgloss only when the destination is a terminal.
// Redirected output, pipes and test buffers receive the exact plain text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorRust    = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	ColorDioxus  = lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// Style selects how a line is rendered on a terminal.
type Style int

const (
	StylePlain Style = iota
	StyleHeader
	StylePrompt
	StyleError
	StyleWarning
	StyleSuccess
	StyleMuted
)

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Printer writes lines to a single destination.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	color    bool
}

// NewPrinter returns a Printer for w. Styling is enabled when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{w: w, color: IsTerminal(w)}
	if p.color {
		p.renderer = lipgloss.NewRenderer(w)
	}
	return p
}

// Writer returns the destination.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Color reports whether output is styled.
func (p *Printer) Color() bool {
	return p.color
}

// Render applies s to text when styling is enabled.
func (p *Printer) Render(s Style, text string) string {
	if !p.color {
		return text
	}
	st := p.renderer.NewStyle()
	switch s {
	case StyleHeader:
		st = st.Bold(true)
	case StylePrompt:
		st = st.Foreground(ColorPrimary)
	case StyleError:
		st = st.Foreground(ColorError)
	case StyleWarning:
		st = st.Foreground(ColorWarning)
	case StyleSuccess:
		st = st.Foreground(ColorSuccess)
	case StyleMuted:
		st = st.Foreground(ColorMuted)
	default:
		return text
	}
	return st.Render(text)
}

// Println writes a styled line followed by a newline.
func (p *Printer) Println(s Style, format string, args ...any) {
	fmt.Fprintln(p.w, p.Render(s, fmt.Sprintf(format, args...)))
}

// Print writes styled text without a trailing newline. Any buffered
// writer exposing Flush is flushed so prompts appear before input is read.
func (p *Printer) Print(s Style, format string, args ...any) {
	fmt.Fprint(p.w, p.Render(s, fmt.Sprintf(format, args...)))
	if f, ok := p.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
