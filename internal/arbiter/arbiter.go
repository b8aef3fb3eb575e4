// Package arbiter selects exactly one feedback directive from the five stage
// reports of a check cycle.
//
// The decision procedure is a fixed cascade of guard-and-return rules,
// evaluated in order; the first rule that fires wins and the fallback always
// fires, so every call produces a directive. Arbitrate is a pure function of
// its inputs: logging and editor highlighting are performed by the caller
// from the returned directive.
package arbiter

import (
	"mentor/internal/feedback"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

// input carries everything a cascade rule may inspect. Complaints are
// partitioned once up front so the three complaint rules agree on bucketing.
type input struct {
	bundle  *report.Bundle
	cfg     *suppress.Config
	buckets complaintBuckets
}

// ruleFn either fires with a directive or falls through.
type ruleFn func(in input) (feedback.Directive, bool)

// rule names are for tests and documentation; execution order is the slice order.
type rule struct {
	name string
	fire ruleFn
}

// cascade is the ordered decision procedure. Order is semantics: do not
// rearrange without reconsidering every downstream rule.
var cascade = []rule{
	{"verifier", ruleVerifier},
	{"verifier-complaints", ruleVerifierComplaints},
	{"parser", ruleParser},
	{"instructor-failure", ruleInstructorFailure},
	{"instructor-complaints", ruleGeneralComplaints},
	{"analyzer", ruleAnalyzer},
	{"student", ruleStudent},
	{"hidden-correctness", ruleHiddenCorrectness},
	{"student-complaints", ruleStudentComplaints},
	{"complete", ruleComplete},
}

// Arbitrate runs the cascade and returns the single directive for this check
// cycle. It never returns a zero directive: the fallback is total. nil inputs
// are treated as a clean bundle and an empty configuration.
func Arbitrate(b *report.Bundle, cfg *suppress.Config) feedback.Directive {
	if b == nil {
		b = report.Clean()
	}
	in := input{
		bundle:  b,
		cfg:     cfg,
		buckets: partitionComplaints(b.Instructor.Complaints),
	}
	for _, r := range cascade {
		if d, ok := r.fire(in); ok {
			return d
		}
	}
	return ruleFallback(in)
}
