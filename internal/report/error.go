package report

import (
	"encoding/json"
	"fmt"
)

// ErrorKind tags the shape of a stage failure payload. Exactly one shape
// applies per kind, so normalizers can switch exhaustively instead of
// sniffing fields.
type ErrorKind uint8

const (
	// ErrMessage carries only explanatory text.
	ErrMessage ErrorKind = iota + 1
	// ErrParse is a structured parser failure with a line and an optional
	// offending-code excerpt.
	ErrParse
	// ErrRuntime is an execution failure with an error-type name and an
	// optional traceback.
	ErrRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMessage:
		return "message"
	case ErrParse:
		return "parse"
	case ErrRuntime:
		return "runtime"
	}
	return "unknown"
}

// MarshalJSON encodes the kind as its string form.
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the string form back to a kind.
func (k *ErrorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "message":
		*k = ErrMessage
	case "parse":
		*k = ErrParse
	case "runtime":
		*k = ErrRuntime
	default:
		return fmt.Errorf("unknown error kind %q", s)
	}
	return nil
}

// Frame is one traceback entry of an execution failure. Lines are 1-based.
type Frame struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line,omitempty"`
}

// StageError is the failure payload a stage attaches when Success is false.
// Field use by kind:
//
//	ErrMessage: Message
//	ErrParse:   Message, Line, Excerpt
//	ErrRuntime: Message, TypeName, Traceback; SyntaxError-at-runtime shapes
//	            additionally carry Line and Excerpt
type StageError struct {
	Kind      ErrorKind `json:"kind"`
	TypeName  string    `json:"type_name,omitempty"`
	Message   string    `json:"message,omitempty"`
	Line      int       `json:"line,omitempty"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Traceback []Frame   `json:"traceback,omitempty"`
}

// NewMessageError wraps bare explanatory text.
func NewMessageError(msg string) *StageError {
	return &StageError{Kind: ErrMessage, Message: msg}
}

// NewParseError builds a parser failure payload.
func NewParseError(line int, excerpt, msg string) *StageError {
	return &StageError{Kind: ErrParse, Line: line, Excerpt: excerpt, Message: msg}
}

// NewRuntimeError builds an execution failure payload.
func NewRuntimeError(typeName, msg string, frames ...Frame) *StageError {
	return &StageError{Kind: ErrRuntime, TypeName: typeName, Message: msg, Traceback: frames}
}

// FirstFrame returns the first traceback frame, if any.
func (e *StageError) FirstFrame() (Frame, bool) {
	if e == nil || len(e.Traceback) == 0 {
		return Frame{}, false
	}
	return e.Traceback[0], true
}
