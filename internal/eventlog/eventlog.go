// Package eventlog builds the structured entries the logging collaborator
// consumes. The arbitration engine itself never logs; the caller turns the
// returned directive into an Entry and hands it to a Writer.
package eventlog

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"mentor/internal/feedback"
)

// Entry is one structured log record. Category, label and message are the
// fields the logging service expects for every directive.
type Entry struct {
	Time     time.Time `json:"time"`
	Category string    `json:"category"`
	Label    string    `json:"label,omitempty"`
	Message  string    `json:"message,omitempty"`
	Line     int       `json:"line,omitempty"`
	Outcome  string    `json:"outcome"`
}

// FromDirective builds the log entry for a directive.
func FromDirective(d feedback.Directive, now time.Time) Entry {
	return Entry{
		Time:     now,
		Category: d.Category.String(),
		Label:    d.Label,
		Message:  d.Message,
		Line:     d.Line,
		Outcome:  d.Outcome.String(),
	}
}

// Writer appends entries as JSON lines. Goroutine-safe.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter wraps an io.Writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Emit writes one entry followed by a newline.
func (w *Writer) Emit(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	enc := json.NewEncoder(w.out)
	return enc.Encode(e)
}
