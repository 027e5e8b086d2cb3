package engine

import (
	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

// IsActiveAt reports whether the member is engaged on day `at`.
//
// An end date earlier than the start date is a re-engagement: the member
// left and came back, so the stale end date is ignored.
func IsActiveAt(m model.Member, at calendar.Date) bool {
	start := m.LastWorkStartDate
	if !start.Valid() || !at.Valid() || calendar.Compare(start, at) > 0 {
		return false
	}

	end := m.LastWorkEndDate
	if end.IsAbsent() {
		return true
	}
	if !end.Valid() {
		return false
	}
	if calendar.Before(end, start) {
		return true
	}
	return calendar.Compare(end, at) >= 0
}

// CountActive is the number of roster members active on day `at`.
func CountActive(roster []model.Member, at calendar.Date) int {
	n := 0
	for i := range roster {
		if IsActiveAt(roster[i], at) {
			n++
		}
	}
	return n
}
