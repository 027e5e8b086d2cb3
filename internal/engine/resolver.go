package engine

import (
	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

// Assignment is the single (month, category) destination chosen for a member
// within one projection run.
type Assignment struct {
	Month      calendar.MonthWindow
	Category   Category
	Priority   Priority
	Date       calendar.Date
	Confidence model.Confidence
}

func assignmentOf(c Candidate) Assignment {
	return Assignment{
		Month:      c.Month,
		Category:   c.Category,
		Priority:   c.Priority,
		Date:       c.Date,
		Confidence: c.Confidence,
	}
}

// Outranks reports whether candidate c should replace the current
// assignment. Stronger evidence always wins; at equal strength a candidate
// for the selected month displaces one for any other month. Everything else
// keeps the first assignment.
func Outranks(c Candidate, current Assignment, selected calendar.MonthWindow) bool {
	if c.Priority != current.Priority {
		return c.Priority < current.Priority
	}
	return c.Month.Same(selected) && !current.Month.Same(selected)
}

// ResolveAssignments folds the candidates into at most one assignment per
// member. The result depends only on the candidate order, which Candidates
// fixes as members outer, months inner.
func ResolveAssignments(candidates []Candidate, selected calendar.MonthWindow) map[string]Assignment {
	out := make(map[string]Assignment)
	for _, c := range candidates {
		current, ok := out[c.MemberID]
		if ok && !Outranks(c, current, selected) {
			continue
		}
		out[c.MemberID] = assignmentOf(c)
	}
	return out
}
