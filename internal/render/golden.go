package render

import (
	"fmt"
	"strings"

	"mentor/internal/feedback"
)

// Golden renders a directive into a stable single-line representation
// suitable for golden files and CLI short output:
//
//	<outcome> <category> line=<n|-> <label>: <message>
//
// Newlines in the message are collapsed so the line stays a line.
func Golden(d feedback.Directive) string {
	line := "-"
	if d.HasLine() {
		line = fmt.Sprintf("%d", d.Line)
	}
	label := d.Label
	if label == "" {
		label = "-"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s line=%s %s", d.Outcome, d.Category, line, label)
	if msg := sanitizeMessage(d.Message); msg != "" {
		fmt.Fprintf(&b, ": %s", msg)
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.Join(strings.Fields(msg), " ")
}
