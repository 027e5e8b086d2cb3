package engine

import (
	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

// Baseline is the headcount active on the last day of the month before the
// first projected month.
func Baseline(roster []model.Member, first calendar.MonthWindow) int {
	return CountActive(roster, first.LastDayOfPrevious())
}

// CumulativeTotals carries the headcount forward month by month from the
// baseline using each month's resolved counts. The result is not clamped.
func CumulativeTotals(baseline int, months []model.MonthlyProjection) []int {
	totals := make([]int, len(months))
	running := baseline
	for i, m := range months {
		running += m.Delta()
		totals[i] = running
	}
	return totals
}
