package arbiter

import (
	"fmt"
	"strings"

	"mentor/internal/report"
)

// parseText is the normalized form of a parser failure.
type parseText struct {
	Title    string
	Original string
	Message  string
	Line     int
}

const syntaxErrorTitle = "Syntax Error"

// normalizeParseError extracts a line number and offending-code excerpt from
// a parser failure payload. Best effort: malformed or missing payloads
// degrade to generic text, never panic — arbitration must stay total.
func normalizeParseError(e *report.StageError) parseText {
	pt := parseText{Title: syntaxErrorTitle}
	if e == nil {
		pt.Message = "I could not understand your program."
		return pt
	}
	pt.Original = strings.TrimSpace(e.Message)
	pt.Line = bestLine(e)

	if pt.Line > 0 {
		pt.Message = fmt.Sprintf("Bad syntax on line %d.", pt.Line)
	} else {
		pt.Message = "Bad syntax in your program."
	}
	if excerpt := strings.TrimSpace(e.Excerpt); excerpt != "" {
		pt.Message += fmt.Sprintf("\n\nThe following code is not valid:\n\n    %s", excerpt)
	}
	return pt
}

// bestLine pulls the most trustworthy 1-based line out of a payload:
// the payload's own line first, then the first traceback frame.
func bestLine(e *report.StageError) int {
	if e == nil {
		return 0
	}
	if e.Line > 0 {
		return e.Line
	}
	if frame, ok := e.FirstFrame(); ok && frame.Line > 0 {
		return frame.Line
	}
	return 0
}
