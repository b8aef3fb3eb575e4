package arbiter

import (
	"fmt"

	"mentor/internal/classify"
	"mentor/internal/feedback"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

const (
	blankProgramLabel = "Blank Program"
	blankProgramText  = "You have not written any code yet. Start by adding blocks or typing a program."

	noErrorsLabel = "No Errors"
	noErrorsText  = "Your program ran without any errors being reported."

	completeLabel = "Complete!"
	completeText  = "Great work! This assignment is complete."

	instructorBugLabel = "Instructor Feedback Error"
	instructorBugText  = "The instructor's feedback script failed. This is a bug in the assignment, not in your program; please report it to your instructor."

	engineBugLabel = "Feedback Engine Error"
	engineBugText  = "The feedback engine's line bookkeeping is inconsistent. This is a bug in the tool itself; please report it."

	analyzerBugLabel = "Analyzer Error"
)

// Step 1: the verifier rejected the program before any analysis ran.
func ruleVerifier(in input) (feedback.Directive, bool) {
	if in.cfg.Stage(report.StageVerifier.String()) || in.bundle.Verifier.Success {
		return feedback.Directive{}, false
	}
	msg := blankProgramText
	if e := in.bundle.Verifier.Error; e != nil && e.Message != "" {
		msg = e.Message
	}
	return feedback.Directive{
		Category: feedback.CatBlankProgram,
		Label:    blankProgramLabel,
		Message:  msg,
		Outcome:  feedback.OutcomeVerifier,
	}, true
}

// Step 2: verifier-priority complaints outrank everything except the
// verifier itself, including suppression of the instructor stage.
func ruleVerifierComplaints(in input) (feedback.Directive, bool) {
	if len(in.buckets.verifier) == 0 {
		return feedback.Directive{}, false
	}
	return complaintDirective(in.buckets.verifier[0]), true
}

// Step 3: syntax errors.
func ruleParser(in input) (feedback.Directive, bool) {
	if in.cfg.Stage(report.StageParser.String()) || in.bundle.Parser.Success {
		return feedback.Directive{}, false
	}
	pt := normalizeParseError(in.bundle.Parser.Error)
	return feedback.Directive{
		Category: feedback.CatSyntax,
		Label:    pt.Title,
		Message:  pt.Message,
		Line:     pt.Line,
		Outcome:  feedback.OutcomeParser,
	}, true
}

// Step 4: the instructor-authored feedback script itself crashed. Three
// sub-cases, which must never be conflated:
//
//   - crash line inside the student's file and the offset-adjusted line is
//     non-negative: the student's code broke while the script exercised it,
//     so it is an ordinary student-facing runtime error;
//   - adjusted line negative: the offset bookkeeping is wrong, an engine bug;
//   - anywhere else: a bug in the instructor script.
func ruleInstructorFailure(in input) (feedback.Directive, bool) {
	inst := in.bundle.Instructor
	if inst.Success {
		return feedback.Directive{}, false
	}
	rt := normalizeRuntimeError(inst.Error)

	if frame, ok := inst.Error.FirstFrame(); ok && inst.Filename != "" && frame.Filename == inst.Filename {
		adjusted := frame.Line - inst.LineOffset
		if adjusted < 0 {
			return feedback.Directive{
				Category: feedback.CatInternal,
				Label:    engineBugLabel,
				Message:  fmt.Sprintf("%s\n\nAdjusted line %d is negative (frame line %d, offset %d).", engineBugText, adjusted, frame.Line, inst.LineOffset),
				Outcome:  feedback.OutcomeInstructor,
			}, true
		}
		return feedback.Directive{
			Category: feedback.CatRuntime,
			Label:    rt.Title,
			Message:  rt.Body,
			Line:     adjusted,
			Outcome:  feedback.OutcomeInstructor,
		}, true
	}

	msg := instructorBugText
	if rt.Body != "" {
		msg = instructorBugText + "\n\n" + rt.Body
	}
	return feedback.Directive{
		Category: feedback.CatInternal,
		Label:    instructorBugLabel,
		Message:  msg,
		Outcome:  feedback.OutcomeInstructor,
	}, true
}

// Step 5: remaining complaints (verifier and student buckets excluded),
// highest priority first, stable within equal priority.
func ruleGeneralComplaints(in input) (feedback.Directive, bool) {
	if in.cfg.Stage(report.StageInstructor.String()) || len(in.buckets.general) == 0 {
		return feedback.Directive{}, false
	}
	sorted := sortComplaints(in.buckets.general)
	return complaintDirective(sorted[0]), true
}

// Step 6: static analyzer findings, gated by hide_correctness.
func ruleAnalyzer(in input) (feedback.Directive, bool) {
	if in.bundle.Instructor.HideCorrectness || in.cfg.Stage(report.StageAnalyzer.String()) {
		return feedback.Directive{}, false
	}
	an := in.bundle.Analyzer
	if !an.Success {
		msg := "The static analyzer failed to process your program."
		if an.Error != nil && an.Error.Message != "" {
			msg += "\n\n" + an.Error.Message
		}
		return feedback.Directive{
			Category: feedback.CatInternal,
			Label:    analyzerBugLabel,
			Message:  msg,
			Outcome:  feedback.OutcomeAnalyzer,
		}, true
	}
	d, ok := classify.Classify(an.Issues, func(kind string) bool {
		return in.cfg.Kind(report.StageAnalyzer.String(), kind)
	})
	if !ok {
		return feedback.Directive{}, false
	}
	d.Outcome = feedback.OutcomeAnalyzer
	return d, true
}

// Step 7: the student's own execution failed. Hidden correctness silences
// this branch too: step 8 must win even over execution failures.
func ruleStudent(in input) (feedback.Directive, bool) {
	if in.bundle.Instructor.HideCorrectness || in.cfg.Stage(report.StageStudent.String()) || in.bundle.Student.Success {
		return feedback.Directive{}, false
	}
	rt := normalizeRuntimeError(in.bundle.Student.Error)
	return feedback.Directive{
		Category: feedback.CatRuntime,
		Label:    rt.Title,
		Message:  rt.Body,
		Line:     rt.Line,
		Outcome:  feedback.OutcomeStudent,
	}, true
}

// Step 8: when the instructor hides correctness feedback, everything from
// here down collapses to a neutral result.
func ruleHiddenCorrectness(in input) (feedback.Directive, bool) {
	if !in.bundle.Instructor.HideCorrectness {
		return feedback.Directive{}, false
	}
	return noErrorsDirective(), true
}

// Step 9: student-priority complaints surface only after real errors.
func ruleStudentComplaints(in input) (feedback.Directive, bool) {
	if in.cfg.Stage(report.StageInstructor.String()) || len(in.buckets.student) == 0 {
		return feedback.Directive{}, false
	}
	return complaintDirective(in.buckets.student[0]), true
}

// Step 10: the instructor script marked the assignment complete.
func ruleComplete(in input) (feedback.Directive, bool) {
	if in.cfg.Stage(report.StageInstructor.String()) || !in.bundle.Instructor.Complete {
		return feedback.Directive{}, false
	}
	return feedback.Directive{
		Category: feedback.CatSuccess,
		Label:    completeLabel,
		Message:  completeText,
		Outcome:  feedback.OutcomeSuccess,
	}, true
}

// Step 11: total fallback. The caller decides whether a bare "completed"
// directive renders anything at all.
func ruleFallback(in input) feedback.Directive {
	if !in.cfg.Stage(suppress.PseudoStageNoErrors) {
		return noErrorsDirective()
	}
	return feedback.Directive{
		Category: feedback.CatComplete,
		Outcome:  feedback.OutcomeCompleted,
	}
}

func noErrorsDirective() feedback.Directive {
	return feedback.Directive{
		Category: feedback.CatNoErrors,
		Label:    noErrorsLabel,
		Message:  noErrorsText,
		Outcome:  feedback.OutcomeNoErrors,
	}
}

func complaintDirective(c report.Complaint) feedback.Directive {
	label := c.Name
	if label == "" {
		label = "Instructor Feedback"
	}
	return feedback.Directive{
		Category: feedback.CatInstructor,
		Label:    label,
		Message:  c.Message,
		Line:     c.Line,
		Outcome:  feedback.OutcomeInstructor,
	}
}
