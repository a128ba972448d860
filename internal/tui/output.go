package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Output writes launcher messages. Messages are styled only when the
// writer is a terminal; otherwise they are plain prefixed lines.
type Output struct {
	w      io.Writer
	styles *Styles
	styled bool
}

// NewOutput creates an output for w with the default theme
func NewOutput(w io.Writer) *Output {
	return &Output{
		w:      w,
		styles: NewStyles(w, DefaultTheme()),
		styled: isTerminal(w),
	}
}

// NewStderrOutput creates an output on os.Stderr
func NewStderrOutput() *Output {
	return NewOutput(os.Stderr)
}

// Styled reports whether messages are rendered with colors and icons
func (o *Output) Styled() bool {
	return o.styled
}

// Error prints an error message
func (o *Output) Error(message string) {
	fmt.Fprintln(o.w, o.render(o.styles.Error.Render("✕"), "error", message))
}

// Hint prints a muted follow-up line under a message
func (o *Output) Hint(message string) {
	if o.styled {
		fmt.Fprintln(o.w, "  "+o.styles.Muted.Render(message))
		return
	}
	fmt.Fprintln(o.w, "  "+message)
}

func (o *Output) render(icon, prefix, message string) string {
	if !o.styled {
		return "kyso: " + prefix + ": " + message
	}
	return icon + " " + o.styles.Bold.Render(message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
