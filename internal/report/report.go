// Package report defines the immutable stage reports consumed by arbitration.
//
// Five independent stages inspect the student's program each check cycle:
// the verifier (block validity), the parser, the instructor-authored feedback
// script, the static analyzer, and the student's own execution. Each hands
// the engine one report. Reports are produced once per cycle and never
// mutated; the engine holds no state across calls.
package report

// Stage names one analysis pass. The string forms double as suppression keys
// and as per-stage file names in a bundle directory.
type Stage uint8

const (
	StageVerifier Stage = iota + 1
	StageParser
	StageInstructor
	StageAnalyzer
	StageStudent
)

func (s Stage) String() string {
	switch s {
	case StageVerifier:
		return "verifier"
	case StageParser:
		return "parser"
	case StageInstructor:
		return "instructor"
	case StageAnalyzer:
		return "analyzer"
	case StageStudent:
		return "student"
	}
	return "unknown"
}

// Stages lists all five stages in pipeline order.
func Stages() []Stage {
	return []Stage{StageVerifier, StageParser, StageInstructor, StageAnalyzer, StageStudent}
}

// Position locates a finding in the student's file. Lines are 1-based.
type Position struct {
	Line int `json:"line"`
}

// Finding is one structured fact recorded by the analyzer for an issue-kind.
// Which fields are populated depends on the kind: variable issues carry Name,
// type issues carry Operation and the operand type tags.
type Finding struct {
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	Operation string   `json:"operation,omitempty"`
	Left      string   `json:"left,omitempty"`
	Right     string   `json:"right,omitempty"`
	Position  Position `json:"position"`
}

// IssueMap holds analyzer findings grouped by issue-kind name. Iteration
// order over the map is meaningless; precedence between kinds is owned by
// the classifier table, never by map order.
type IssueMap map[string][]Finding

// Priority buckets instructor complaints before cascade evaluation. It is a
// free-form string because instructor scripts author it; unknown tags sort
// after all known ones.
type Priority string

const (
	PriorityHighest  Priority = "highest"
	PriorityHigh     Priority = "high"
	PriorityVerifier Priority = "verifier"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityLowest   Priority = "lowest"
	PriorityStudent  Priority = "student"
)

// Complaint is a message proposed by instructor-authored feedback code.
type Complaint struct {
	Name     string   `json:"name"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
	Priority Priority `json:"priority,omitempty"`
}

// Verifier reports whether the program was well-formed enough to analyze at all.
type Verifier struct {
	Success bool        `json:"success"`
	Error   *StageError `json:"error,omitempty"`
}

// Parser reports the syntax check.
type Parser struct {
	Success bool        `json:"success"`
	Error   *StageError `json:"error,omitempty"`
}

// Instructor carries the results of the instructor-authored feedback script.
// Success is about the script itself: false means the script crashed, which
// is never the student's fault unless the crash line falls inside the
// student's own file.
type Instructor struct {
	Success         bool        `json:"success"`
	Error           *StageError `json:"error,omitempty"`
	Complaints      []Complaint `json:"complaints,omitempty"`
	Compliments     []string    `json:"compliments,omitempty"`
	Complete        bool        `json:"complete,omitempty"`
	HideCorrectness bool        `json:"hide_correctness,omitempty"`
	// Filename is the student's file as seen by the execution environment.
	Filename string `json:"filename,omitempty"`
	// LineOffset is how many lines of instructor prelude precede the
	// student's code when the script runs; failure lines inside the
	// student's file are adjusted by it.
	LineOffset int `json:"line_offset,omitempty"`
}

// Analyzer carries the static analyzer's findings.
type Analyzer struct {
	Success bool        `json:"success"`
	Error   *StageError `json:"error,omitempty"`
	Issues  IssueMap    `json:"issues,omitempty"`
}

// Student reports the student's own program execution.
type Student struct {
	Success bool        `json:"success"`
	Error   *StageError `json:"error,omitempty"`
}

// Bundle is one check cycle's worth of stage reports, the immutable input to
// a single arbitration call.
type Bundle struct {
	Verifier   Verifier   `json:"verifier"`
	Parser     Parser     `json:"parser"`
	Instructor Instructor `json:"instructor"`
	Analyzer   Analyzer   `json:"analyzer"`
	Student    Student    `json:"student"`
}

// Clean returns a bundle with every stage successful and nothing reported.
// Missing per-stage files decode to these values.
func Clean() *Bundle {
	return &Bundle{
		Verifier:   Verifier{Success: true},
		Parser:     Parser{Success: true},
		Instructor: Instructor{Success: true},
		Analyzer:   Analyzer{Success: true},
		Student:    Student{Success: true},
	}
}
