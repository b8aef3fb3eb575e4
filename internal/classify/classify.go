// Package classify turns analyzer findings into a single directive.
//
// Precedence among simultaneous issue-kinds is load-bearing: the table below
// is an explicit ordered slice, never a map, and the first non-suppressed
// kind with at least one finding wins. Later kinds are not inspected once one
// fires.
package classify

import (
	"fmt"

	"mentor/internal/feedback"
	"mentor/internal/report"
)

// Canonical analyzer issue-kind names. These double as suppression keys.
const (
	KindActionAfterReturn       = "Action after return"
	KindReturnOutsideFunction   = "Return outside function"
	KindUnconnectedBlocks       = "Unconnected blocks"
	KindIterationVariableShadow = "Iteration variable shadows its source"
	KindUndefinedVariables      = "Undefined variables"
	KindPossiblyUndefined       = "Possibly undefined variables"
	KindUnreadVariables         = "Unread variables"
	KindOverwrittenVariables    = "Overwritten variables"
	KindEmptyIterations         = "Empty iterations"
	KindNonListIterations       = "Non-list iterations"
	KindIncompatibleTypes       = "Incompatible types"
	KindReadOutOfScope          = "Read out of scope"
)

// Rule recognizes one issue-kind and renders a message from its first finding.
type Rule struct {
	Kind  string
	Label string
	// skip drops a finding without firing (e.g. compiler-generated names).
	skip func(f report.Finding) bool
	// build renders the message and chooses the reported line.
	build func(f report.Finding) (msg string, line int)
}

// псевдо-имя, которым анализатор помечает неявное возвращаемое значение
const implicitReturnMark = "*"

func isImplicitReturn(name string) bool {
	return len(name) > 0 && name[0:1] == implicitReturnMark
}

var rules = []Rule{
	{
		Kind:  KindActionAfterReturn,
		Label: "Dead Code",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("You performed an action on line %d, but that line will never run because it comes after a return.", f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindReturnOutsideFunction,
		Label: "Misplaced Return",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("You have a return on line %d that is not inside a function. Return can only be used inside a function definition.", f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindUnconnectedBlocks,
		Label: "Unconnected Blocks",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("One or more of the blocks near line %d are not connected to the rest of your program. Disconnected blocks never run.", f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindIterationVariableShadow,
		Label: "Iteration Problem",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was iterated on line %d, but the iteration variable has the same name as the list itself. That overwrites the list.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindUndefinedVariables,
		Label: "Initialization Problem",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was used on line %d, but it was not given a value on a previous line. You cannot use a variable until it has been given a value.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindPossiblyUndefined,
		Label: "Initialization Problem",
		skip: func(f report.Finding) bool {
			// implicit function-return values are analyzer bookkeeping,
			// not something the student named
			return isImplicitReturn(f.Name)
		},
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q may not have been given a value before it is used on line %d. Make sure every path through your program sets it.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindUnreadVariables,
		Label: "Unused Variable",
		build: func(f report.Finding) (string, int) {
			// no line: the point is that the variable is never read anywhere
			return fmt.Sprintf("The variable %q was given a value, but it is never used after that.", f.Name), 0
		},
	},
	{
		Kind:  KindOverwrittenVariables,
		Label: "Overwritten Variable",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was given a value, and then given another value on line %d before the old one was ever used.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindEmptyIterations,
		Label: "Iterating over empty list",
		skip:  func(f report.Finding) bool { return f.Name == "" },
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was iterated on line %d, but it is always an empty list. The loop body will never run.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindNonListIterations,
		Label: "Iterating over non-list",
		skip:  func(f report.Finding) bool { return f.Name == "" },
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was iterated on line %d, but it is not a list. You can only iterate over lists.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindIncompatibleTypes,
		Label: "Incompatible types",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("You used %s with %s and %s on line %d, but those types cannot be combined that way.",
					operationPhrase(f.Operation), typePhrase(f.Left), typePhrase(f.Right), f.Position.Line),
				f.Position.Line
		},
	},
	{
		Kind:  KindReadOutOfScope,
		Label: "Read out of Scope",
		build: func(f report.Finding) (string, int) {
			return fmt.Sprintf("The variable %q was read on line %d, but it was created inside another function. Variables only exist inside the function that created them.", f.Name, f.Position.Line),
				f.Position.Line
		},
	},
}

// Table returns the canonical rule order. The returned slice is shared;
// callers must not modify it.
func Table() []Rule {
	return rules
}

// Classify walks the canonical table and builds a directive from the first
// finding of the first non-suppressed, non-empty kind. ok is false when no
// rule fires. The directive's outcome is left to the caller.
func Classify(issues report.IssueMap, suppressed func(kind string) bool) (feedback.Directive, bool) {
	if len(issues) == 0 {
		return feedback.Directive{}, false
	}
	for _, r := range rules {
		if suppressed != nil && suppressed(r.Kind) {
			continue
		}
		findings := issues[r.Kind]
		if len(findings) == 0 {
			continue
		}
		f := findings[0]
		if r.skip != nil && r.skip(f) {
			continue
		}
		msg, line := r.build(f)
		return feedback.Directive{
			Category: feedback.CatSemantic,
			Label:    r.Label,
			Message:  msg,
			Line:     line,
		}, true
	}
	return feedback.Directive{}, false
}
