package feedback

// Outcome identifies which cascade branch produced a directive.
// Callers use it for logging and testing instead of matching label text.
type Outcome uint8

const (
	// OutcomeVerifier fires when the program was blank or structurally invalid.
	OutcomeVerifier Outcome = iota + 1
	// OutcomeParser fires on a syntax error.
	OutcomeParser
	// OutcomeInstructor fires for instructor complaints and instructor-stage failures.
	OutcomeInstructor
	// OutcomeAnalyzer fires when the static analyzer flagged an issue.
	OutcomeAnalyzer
	// OutcomeStudent fires when the student's own execution failed.
	OutcomeStudent
	// OutcomeNoErrors is the generic "ran without error" result.
	OutcomeNoErrors
	// OutcomeSuccess fires when the instructor script marked the work complete.
	OutcomeSuccess
	// OutcomeCompleted is the terminal fallback when even "no errors" is suppressed.
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVerifier:
		return "verifier"
	case OutcomeParser:
		return "parser"
	case OutcomeInstructor:
		return "instructor"
	case OutcomeAnalyzer:
		return "analyzer"
	case OutcomeStudent:
		return "student"
	case OutcomeNoErrors:
		return "no-errors"
	case OutcomeSuccess:
		return "success"
	case OutcomeCompleted:
		return "completed"
	}
	return "unknown"
}

// Category classifies a directive for presentation and logging.
type Category uint8

const (
	// CatBlankProgram: nothing to analyze yet.
	CatBlankProgram Category = iota + 1
	// CatSyntax: the parser rejected the program.
	CatSyntax
	// CatSemantic: the static analyzer flagged an issue.
	CatSemantic
	// CatRuntime: the student's execution raised an error.
	CatRuntime
	// CatInstructor: instructor-authored complaint.
	CatInstructor
	// CatInternal: a bug in the tooling, aimed at instructors/developers.
	CatInternal
	// CatNoErrors: nothing wrong was found.
	CatNoErrors
	// CatSuccess: the instructor script marked the assignment complete.
	CatSuccess
	// CatComplete: terminal fallback with nothing to render.
	CatComplete
)

func (c Category) String() string {
	switch c {
	case CatBlankProgram:
		return "blank-program"
	case CatSyntax:
		return "syntax"
	case CatSemantic:
		return "semantic"
	case CatRuntime:
		return "runtime"
	case CatInstructor:
		return "instructor"
	case CatInternal:
		return "internal"
	case CatNoErrors:
		return "no-errors"
	case CatSuccess:
		return "success"
	case CatComplete:
		return "complete"
	}
	return "unknown"
}

// IsError reports whether the category describes a problem (as opposed to
// praise or silence). CLI callers use it for the exit status.
func (c Category) IsError() bool {
	switch c {
	case CatNoErrors, CatSuccess, CatComplete:
		return false
	}
	return true
}

// Directive is the single arbitration result. One is produced per call,
// always; it is a transient value with no state behind it.
//
// Line is 1-based; zero means "no line". Translation to the editor's
// 0-based convention happens only at the presentation boundary, see
// EditorLine.
type Directive struct {
	Category Category
	Label    string
	Message  string
	Line     int
	Outcome  Outcome
}

// HasLine reports whether the directive carries a source line.
func (d Directive) HasLine() bool {
	return d.Line > 0
}
