// Package render formats feedback directives for terminals, machines, and
// golden files. It performs no decisions of its own: everything it prints
// comes off the directive, and the 0-based editor translation happens here
// and nowhere deeper.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"mentor/internal/feedback"
)

var (
	errorLabelColor    = color.New(color.FgRed, color.Bold)
	internalLabelColor = color.New(color.FgMagenta, color.Bold)
	praiseLabelColor   = color.New(color.FgGreen, color.Bold)
	neutralLabelColor  = color.New(color.FgCyan, color.Bold)
	metaColor          = color.New(color.Faint)
)

func labelColor(c feedback.Category) *color.Color {
	switch c {
	case feedback.CatInternal:
		return internalLabelColor
	case feedback.CatSuccess, feedback.CatComplete:
		return praiseLabelColor
	case feedback.CatNoErrors:
		return neutralLabelColor
	default:
		return errorLabelColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// Pretty writes a human-readable rendering of the directive:
//
//	<LABEL> (category, line N)
//	<message>
//
// A terminal "completed" directive with no label prints nothing.
func Pretty(w io.Writer, d feedback.Directive, opts PrettyOpts) {
	if d.Label == "" && d.Message == "" {
		return
	}

	meta := d.Category.String()
	if d.HasLine() {
		meta += fmt.Sprintf(", line %d", d.Line)
	}
	if opts.ShowOutcome {
		meta += ", outcome " + d.Outcome.String()
	}
	fmt.Fprintf(w, "%s %s\n",
		paint(opts.Color, labelColor(d.Category), d.Label),
		paint(opts.Color, metaColor, "("+meta+")"))

	if d.Message != "" {
		fmt.Fprintf(w, "%s\n", d.Message)
	}
	if opts.ShowEditorLine {
		if line, ok := feedback.EditorLine(d); ok {
			fmt.Fprintf(w, "%s\n", paint(opts.Color, metaColor, fmt.Sprintf("editor line: %d", line)))
		}
	}
}
