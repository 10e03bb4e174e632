// Package render formats user-facing setup output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ruleWidth is the width of the "=" rules around step headers.
const ruleWidth = 60

// Reporter writes progress lines for setup steps. Styling is applied only
// when w is a color-capable terminal.
type Reporter struct {
	w      io.Writer
	header lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	subtle lipgloss.Style
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// Header prints a step banner: a blank line, a rule, the indented title,
// another rule and a blank line.
func (r *Reporter) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.w, "\n%s\n  %s\n%s\n\n", rule, r.header.Render(title), rule)
}

// Info prints a plain progress line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Success prints a line prefixed with a check mark.
func (r *Reporter) Success(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", r.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// Failure prints a line prefixed with a cross.
func (r *Reporter) Failure(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", r.fail.Render("✗"), fmt.Sprintf(format, args...))
}

// Error prints captured diagnostic text from a failed command.
func (r *Reporter) Error(diagnostic string) {
	fmt.Fprintf(r.w, "Error: %s\n", strings.TrimRight(diagnostic, "\n"))
}

// Hint prints an indented command the user can run themselves.
func (r *Reporter) Hint(command string) {
	fmt.Fprintf(r.w, "  %s\n", r.subtle.Render(command))
}
