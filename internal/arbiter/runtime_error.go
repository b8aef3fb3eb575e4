package arbiter

import (
	"fmt"
	"strings"

	"mentor/internal/report"
)

// runtimeText is the normalized form of an execution failure.
type runtimeText struct {
	Title    string
	Original string
	Body     string
	Line     int
}

// placeholderIdent is the identifier the block scaffolding leaves in
// unfinished slots; seeing it in a name error means the student ran an
// incomplete program, not that a variable is missing.
const placeholderIdent = "___"

const runtimeErrorTitle = "Runtime Error"

// extendedExplanations maps execution error-type names to student-facing
// explanations. Entries are looked up by the exact type name.
var extendedExplanations = map[string]string{
	"TypeError":         "A TypeError means an operation was applied to the wrong type of value, like adding a number to a string. Check the types of the values on the reported line.",
	"NameError":         "A NameError means you used a variable that has no value yet. You may have misspelled it, or used it before the line that sets it.",
	"ValueError":        "A ValueError means a function received a value of the right type but with an unusable content, like converting the word \"apple\" to a number.",
	"AttributeError":    "An AttributeError means you asked a value for something it does not have, like calling a list method on a number. Check the value on the reported line.",
	"IndexError":        "An IndexError means you asked for a position past the end of a list or string. Remember positions start at 0.",
	"KeyError":          "A KeyError means you looked up a key that is not in the dictionary. Check the spelling of the key.",
	"ZeroDivisionError": "A ZeroDivisionError means your program divided by zero. Check the divisor on the reported line.",
	"IndentationError":  "An IndentationError means a line is indented wrongly. Every line in the same block must be indented by the same amount.",
	"ImportError":       "An ImportError means the module you tried to import is unavailable. Check the module name.",
	"IOError":           "An IOError means a file could not be read or written. Check that the file exists and its name is spelled correctly.",
	"RecursionError":    "A RecursionError means a function called itself too many times without stopping. Check that your recursion has a base case that is actually reached.",
	"MemoryError":       "A MemoryError means your program tried to use far more memory than expected, often because a loop keeps growing a list forever.",
	"TimeoutError":      "A TimeoutError means your program ran too long, usually because of a loop that never finishes. Check the loop's stopping condition.",
}

// normalizeRuntimeError maps an execution failure to explanatory text.
// Tiers, tried in order:
//
//  1. a syntax error surfaced at runtime, carrying its own line/excerpt;
//  2. the incomplete-block placeholder sentinel;
//  3. the extended-explanation table, keyed by error-type name;
//  4. pass through whatever text the payload already carries.
//
// The line is always best effort: first traceback frame when present, then
// the payload's own line, else zero ("no line").
func normalizeRuntimeError(e *report.StageError) runtimeText {
	rt := runtimeText{Title: runtimeErrorTitle}
	if e == nil {
		rt.Body = "Your program failed, but no details were reported."
		return rt
	}
	rt.Original = strings.TrimSpace(e.Message)
	rt.Line = frameLine(e)

	// tier 1: syntax error raised while running
	if (e.Kind == report.ErrRuntime && e.TypeName == "SyntaxError") || e.Kind == report.ErrParse {
		pt := normalizeParseError(e)
		return runtimeText{Title: pt.Title, Original: pt.Original, Body: pt.Message, Line: pt.Line}
	}

	// tier 2: incomplete-block placeholder
	if strings.Contains(e.Message, placeholderIdent) {
		rt.Title = "Unfilled Blank"
		rt.Body = "Your program still has unfilled blank slots. Fill in every blank block before running."
		return rt
	}

	// tier 3: extended explanation by error-type name
	if expl, ok := extendedExplanations[e.TypeName]; ok {
		rt.Title = e.TypeName
		rt.Body = expl
		if rt.Original != "" {
			rt.Body += "\n\n" + rt.Original
		}
		return rt
	}

	// tier 4: pass through
	if e.TypeName != "" {
		rt.Title = e.TypeName
	}
	switch {
	case rt.Original != "":
		rt.Body = rt.Original
	case e.TypeName != "":
		rt.Body = fmt.Sprintf("Your program raised a %s.", e.TypeName)
	default:
		rt.Body = "Your program failed, but no details were reported."
	}
	return rt
}

func frameLine(e *report.StageError) int {
	if frame, ok := e.FirstFrame(); ok && frame.Line > 0 {
		return frame.Line
	}
	if e != nil && e.Line > 0 {
		return e.Line
	}
	return 0
}
