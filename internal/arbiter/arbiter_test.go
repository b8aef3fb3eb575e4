package arbiter

import (
	"testing"

	"mentor/internal/classify"
	"mentor/internal/feedback"
	"mentor/internal/render"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

func cleanBundle() *report.Bundle {
	return report.Clean()
}

func TestArbitrateIsTotal(t *testing.T) {
	// даже на пустых входах каскад обязан вернуть директиву
	inputs := []*report.Bundle{
		nil,
		{},
		cleanBundle(),
	}
	for _, b := range inputs {
		d := Arbitrate(b, nil)
		if d.Outcome == 0 {
			t.Fatalf("Arbitrate(%+v) returned empty outcome", b)
		}
	}
}

func TestVerifierFailureWinsOverEverything(t *testing.T) {
	b := cleanBundle()
	b.Verifier = report.Verifier{Success: false}
	b.Parser = report.Parser{Success: false, Error: report.NewParseError(3, "if x", "bad syntax")}
	b.Student = report.Student{Success: false, Error: report.NewRuntimeError("TypeError", "boom")}
	b.Analyzer.Issues = report.IssueMap{
		classify.KindUndefinedVariables: {{Name: "x", Position: report.Position{Line: 4}}},
	}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeVerifier {
		t.Fatalf("outcome = %s, want verifier", d.Outcome)
	}
	if d.Label != "Blank Program" {
		t.Fatalf("label = %q, want Blank Program", d.Label)
	}
}

func TestVerifierSuppressed(t *testing.T) {
	b := cleanBundle()
	b.Verifier = report.Verifier{Success: false}

	cfg := suppress.New().SuppressStage("verifier")
	d := Arbitrate(b, cfg)
	if d.Outcome == feedback.OutcomeVerifier {
		t.Fatalf("suppressed verifier still fired: %+v", d)
	}
	if d.Outcome != feedback.OutcomeNoErrors {
		t.Fatalf("outcome = %s, want no-errors fallback", d.Outcome)
	}
}

func TestVerifierPriorityComplaintOutranksParser(t *testing.T) {
	b := cleanBundle()
	b.Parser = report.Parser{Success: false, Error: report.NewParseError(3, "", "bad")}
	b.Instructor.Complaints = []report.Complaint{
		{Name: "Also Blank", Message: "fill in the starter block", Priority: report.PriorityVerifier},
	}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeInstructor {
		t.Fatalf("outcome = %s, want instructor", d.Outcome)
	}
	if d.Label != "Also Blank" {
		t.Fatalf("label = %q, want Also Blank", d.Label)
	}
}

func TestParserBranch(t *testing.T) {
	b := cleanBundle()
	b.Parser = report.Parser{Success: false, Error: report.NewParseError(7, "for x in", "unexpected EOF")}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeParser {
		t.Fatalf("outcome = %s, want parser", d.Outcome)
	}
	if d.Category != feedback.CatSyntax {
		t.Fatalf("category = %s, want syntax", d.Category)
	}
	if d.Line != 7 {
		t.Fatalf("line = %d, want 7", d.Line)
	}
}

func TestInstructorFailureInStudentFile(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Filename = "answer.py"
	b.Instructor.LineOffset = 5
	b.Instructor.Success = false
	b.Instructor.Error = report.NewRuntimeError("TypeError", "bad add",
		report.Frame{Filename: "answer.py", Line: 9})

	d := Arbitrate(b, nil)
	if d.Category != feedback.CatRuntime {
		t.Fatalf("category = %s, want runtime (student-facing)", d.Category)
	}
	if d.Line != 4 {
		t.Fatalf("line = %d, want 9-5=4", d.Line)
	}
	if d.Outcome != feedback.OutcomeInstructor {
		t.Fatalf("outcome = %s, want instructor", d.Outcome)
	}
}

func TestInstructorFailureNegativeLineIsEngineBug(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Filename = "answer.py"
	b.Instructor.LineOffset = 20
	b.Instructor.Success = false
	b.Instructor.Error = report.NewRuntimeError("TypeError", "bad add",
		report.Frame{Filename: "answer.py", Line: 9})

	d := Arbitrate(b, nil)
	if d.Category != feedback.CatInternal {
		t.Fatalf("category = %s, want internal", d.Category)
	}
	if d.Label != engineBugLabel {
		t.Fatalf("label = %q, want %q", d.Label, engineBugLabel)
	}
}

func TestInstructorFailureInScriptIsInternal(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Filename = "answer.py"
	b.Instructor.Success = false
	b.Instructor.Error = report.NewRuntimeError("KeyError", "'expected'",
		report.Frame{Filename: "instructor_checks.py", Line: 40})

	d := Arbitrate(b, nil)
	if d.Category != feedback.CatInternal {
		t.Fatalf("category = %s, want internal", d.Category)
	}
	if d.Label != instructorBugLabel {
		t.Fatalf("label = %q, want %q", d.Label, instructorBugLabel)
	}
}

func TestAnalyzerBranchUsesClassifier(t *testing.T) {
	b := cleanBundle()
	b.Analyzer.Issues = report.IssueMap{
		classify.KindUndefinedVariables: {{Name: "x", Position: report.Position{Line: 4}}},
		classify.KindUnreadVariables:    {{Name: "y", Position: report.Position{Line: 7}}},
	}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeAnalyzer {
		t.Fatalf("outcome = %s, want analyzer", d.Outcome)
	}
	if d.Label != "Initialization Problem" {
		t.Fatalf("label = %q, want Initialization Problem", d.Label)
	}
	if d.Line != 4 {
		t.Fatalf("line = %d, want 4", d.Line)
	}
}

func TestAnalyzerKindSuppressionFlipsToNextRule(t *testing.T) {
	b := cleanBundle()
	b.Analyzer.Issues = report.IssueMap{
		classify.KindUndefinedVariables: {{Name: "x", Position: report.Position{Line: 4}}},
		classify.KindUnreadVariables:    {{Name: "y", Position: report.Position{Line: 7}}},
	}
	cfg := suppress.New().SuppressKind("analyzer", classify.KindUndefinedVariables)

	d := Arbitrate(b, cfg)
	if d.Label != "Unused Variable" {
		t.Fatalf("label = %q, want Unused Variable", d.Label)
	}
	if d.HasLine() {
		t.Fatalf("unread-variable rule must not carry a line, got %d", d.Line)
	}
}

func TestAnalyzerInternalFailure(t *testing.T) {
	b := cleanBundle()
	b.Analyzer = report.Analyzer{Success: false, Error: report.NewMessageError("walker crashed")}

	d := Arbitrate(b, nil)
	if d.Category != feedback.CatInternal {
		t.Fatalf("category = %s, want internal", d.Category)
	}
	if d.Outcome != feedback.OutcomeAnalyzer {
		t.Fatalf("outcome = %s, want analyzer", d.Outcome)
	}
}

func TestStudentBranch(t *testing.T) {
	b := cleanBundle()
	b.Student = report.Student{
		Success: false,
		Error: report.NewRuntimeError("ZeroDivisionError", "division by zero",
			report.Frame{Filename: "answer.py", Line: 12}),
	}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeStudent {
		t.Fatalf("outcome = %s, want student", d.Outcome)
	}
	if d.Category != feedback.CatRuntime {
		t.Fatalf("category = %s, want runtime", d.Category)
	}
	if d.Line != 12 {
		t.Fatalf("line = %d, want 12", d.Line)
	}
}

func TestHideCorrectnessShortCircuits(t *testing.T) {
	b := cleanBundle()
	b.Instructor.HideCorrectness = true
	b.Analyzer.Issues = report.IssueMap{
		classify.KindUndefinedVariables: {{Name: "x", Position: report.Position{Line: 4}}},
	}
	b.Student = report.Student{Success: false, Error: report.NewRuntimeError("TypeError", "boom")}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeNoErrors {
		t.Fatalf("outcome = %s, want no-errors despite failures", d.Outcome)
	}
}

func TestStudentPriorityComplaintAfterCleanRun(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Complaints = []report.Complaint{
		{Name: "Style", Message: "consider a better name", Priority: report.PriorityStudent, Line: 2},
	}

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeInstructor {
		t.Fatalf("outcome = %s, want instructor", d.Outcome)
	}
	if d.Label != "Style" {
		t.Fatalf("label = %q, want Style", d.Label)
	}
}

func TestCompleteFlag(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Complete = true

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", d.Outcome)
	}
	if d.Label != completeLabel {
		t.Fatalf("label = %q, want %q", d.Label, completeLabel)
	}
}

func TestFallbackRespectsNoErrorsSuppression(t *testing.T) {
	b := cleanBundle()

	d := Arbitrate(b, nil)
	if d.Outcome != feedback.OutcomeNoErrors {
		t.Fatalf("outcome = %s, want no-errors", d.Outcome)
	}

	cfg := suppress.New().SuppressStage(suppress.PseudoStageNoErrors)
	d = Arbitrate(b, cfg)
	if d.Outcome != feedback.OutcomeCompleted {
		t.Fatalf("outcome = %s, want completed", d.Outcome)
	}
	if d.Message != "" || d.Label != "" {
		t.Fatalf("completed directive must be empty, got %+v", d)
	}
}

func TestArbitrateIsIdempotent(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Complaints = []report.Complaint{
		{Name: "A", Message: "first", Priority: report.PriorityMedium},
		{Name: "B", Message: "second", Priority: report.PriorityHigh},
	}
	cfg := suppress.New().SuppressKind("analyzer", classify.KindUnreadVariables)

	first := render.Golden(Arbitrate(b, cfg))
	second := render.Golden(Arbitrate(b, cfg))
	if first != second {
		t.Fatalf("non-deterministic arbitration:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestGeneralComplaintsSortByPriority(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Complaints = []report.Complaint{
		{Name: "Low", Message: "later", Priority: report.PriorityLow},
		{Name: "High", Message: "sooner", Priority: report.PriorityHigh},
	}

	d := Arbitrate(b, nil)
	if d.Label != "High" {
		t.Fatalf("label = %q, want High", d.Label)
	}
}

func TestInstructorSuppressionSilencesComplaints(t *testing.T) {
	b := cleanBundle()
	b.Instructor.Complaints = []report.Complaint{
		{Name: "High", Message: "sooner", Priority: report.PriorityHigh},
		{Name: "Style", Message: "nit", Priority: report.PriorityStudent},
	}
	b.Instructor.Complete = true

	cfg := suppress.New().SuppressStage("instructor")
	d := Arbitrate(b, cfg)
	if d.Outcome != feedback.OutcomeNoErrors {
		t.Fatalf("outcome = %s, want no-errors with instructor suppressed", d.Outcome)
	}
}
