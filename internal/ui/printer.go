// Package ui renders workhere's status output and interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes status lines to Out and diagnostics to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer

	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
}

// NewPrinter returns a Printer for the given writers. Colours are only
// emitted when a writer is a terminal.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &Printer{
		Out:     out,
		Err:     errOut,
		success: outR.NewStyle().Foreground(lipgloss.Color("82")),
		warn:    outR.NewStyle().Foreground(lipgloss.Color("214")),
		fail:    errR.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted:   outR.NewStyle().Foreground(lipgloss.Color("244")),
		accent:  outR.NewStyle().Foreground(lipgloss.Color("62")),
	}
}

// Linef writes an unstyled line to Out.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Info writes a progress line to Out.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.Out, p.accent.Render(fmt.Sprintf(format, args...)))
}

// Success writes a completion line to Out.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.Out, p.success.Render(fmt.Sprintf(format, args...)))
}

// Warn writes a non-fatal notice to Out.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.Out, p.warn.Render(fmt.Sprintf(format, args...)))
}

// Muted writes a de-emphasised line to Out.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.Out, p.muted.Render(fmt.Sprintf(format, args...)))
}

// Error writes "Error: <message>" to Err.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.Err, p.fail.Render("Error: "+fmt.Sprintf(format, args...)))
}
