package render

import (
	"encoding/json"
	"io"

	"mentor/internal/feedback"
)

// DirectiveJSON is the machine-readable shape of a directive. Line is the
// 1-based report line; EditorLine, when requested, is the 0-based line the
// highlighting collaborator consumes.
type DirectiveJSON struct {
	Category   string `json:"category"`
	Label      string `json:"label,omitempty"`
	Message    string `json:"message,omitempty"`
	Line       int    `json:"line,omitempty"`
	Outcome    string `json:"outcome"`
	EditorLine *int   `json:"editor_line,omitempty"`
}

// ToJSON converts a directive to its JSON shape.
func ToJSON(d feedback.Directive, opts JSONOpts) DirectiveJSON {
	out := DirectiveJSON{
		Category: d.Category.String(),
		Label:    d.Label,
		Message:  d.Message,
		Line:     d.Line,
		Outcome:  d.Outcome.String(),
	}
	if opts.IncludeEditorLine {
		if line, ok := feedback.EditorLine(d); ok {
			n := int(line)
			out.EditorLine = &n
		}
	}
	return out
}

// JSON encodes the directive to w.
func JSON(w io.Writer, d feedback.Directive, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(ToJSON(d, opts))
}
