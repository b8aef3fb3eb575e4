package arbiter

import (
	"sort"

	"mentor/internal/report"
)

// complaintBuckets partitions instructor complaints by priority before the
// cascade runs. Verifier-priority complaints act like verifier feedback
// (step 2), student-priority ones wait until after real errors (step 9),
// everything else is the general bucket (step 5). Original order is kept
// inside each bucket.
type complaintBuckets struct {
	verifier []report.Complaint
	student  []report.Complaint
	general  []report.Complaint
}

func partitionComplaints(cs []report.Complaint) complaintBuckets {
	var b complaintBuckets
	for _, c := range cs {
		switch c.Priority {
		case report.PriorityVerifier:
			b.verifier = append(b.verifier, c)
		case report.PriorityStudent:
			b.student = append(b.student, c)
		default:
			b.general = append(b.general, c)
		}
	}
	return b
}

// priorityRank is the fixed total order among known priority tags. Lower
// rank wins. Unknown tags rank after every known one.
var priorityRank = map[report.Priority]int{
	report.PriorityHighest:  0,
	report.PriorityHigh:     1,
	report.PriorityVerifier: 2,
	report.PriorityMedium:   3,
	report.PriorityLow:      4,
	report.PriorityLowest:   5,
	report.PriorityStudent:  6,
}

func rank(p report.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// sortComplaints returns a copy ordered by priority rank. Ties keep their
// original relative order; the stable sort here is a contract, not a detail.
func sortComplaints(cs []report.Complaint) []report.Complaint {
	out := make([]report.Complaint, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Priority) < rank(out[j].Priority)
	})
	return out
}
