package engine

import (
	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

// HorizonMonths is the number of months a projection covers, starting with
// the selected month.
const HorizonMonths = 3

type Category uint8

const (
	CategoryNewStarting Category = iota
	CategorySwitching
	CategoryProjectEnding
	CategoryContractEnding
)

func (c Category) String() string {
	switch c {
	case CategoryNewStarting:
		return "new_starting"
	case CategorySwitching:
		return "switching"
	case CategoryProjectEnding:
		return "project_ending"
	case CategoryContractEnding:
		return "contract_ending"
	}
	return "unknown"
}

// Priority ranks the evidence behind a candidate. Lower wins.
type Priority int

const (
	DateBased   Priority = 1
	StatusBased Priority = 2
)

func (p Priority) Basis() model.Basis {
	if p == DateBased {
		return model.BasisDate
	}
	return model.BasisStatus
}

// Candidate is one piece of evidence that a member belongs to a category in
// a given month.
type Candidate struct {
	MemberID   string
	Month      calendar.MonthWindow
	Category   Category
	Priority   Priority
	Date       calendar.Date
	Confidence model.Confidence
}

// ClassifyForMonth returns every candidate the member produces for the
// month, date-based evidence first. Status-based switching is listed before
// status-based new-starting so a pipeline member with a past engagement is
// seen as switching.
func ClassifyForMonth(m model.Member, month calendar.MonthWindow, today calendar.Date) []Candidate {
	start := m.LastWorkStartDate
	end := m.LastWorkEndDate

	confidence := model.ConfidenceMedium
	if today.Valid() && today.Year() == month.Year && today.Month() == month.Month {
		confidence = model.ConfidenceHigh
	}

	var out []Candidate
	add := func(c Category, p Priority, d calendar.Date, conf model.Confidence) {
		out = append(out, Candidate{
			MemberID:   m.ID,
			Month:      month,
			Category:   c,
			Priority:   p,
			Date:       d,
			Confidence: conf,
		})
	}

	if month.Contains(start) && end.IsAbsent() {
		add(CategoryNewStarting, DateBased, start, confidence)
	}
	if end.Valid() && calendar.Before(end, start) && month.Contains(start) {
		add(CategorySwitching, DateBased, start, confidence)
	}
	if month.Contains(end) {
		add(CategoryProjectEnding, DateBased, end, confidence)
	}
	if month.Contains(m.ContractEndDate) {
		add(CategoryContractEnding, DateBased, m.ContractEndDate, model.ConfidenceHigh)
	}

	if m.Status.IsPipeline() {
		if end.Valid() {
			add(CategorySwitching, StatusBased, calendar.Date{}, confidence)
		}
		if start.IsAbsent() {
			add(CategoryNewStarting, StatusBased, calendar.Date{}, confidence)
		}
	}

	return out
}

// ProjectionMonths returns the horizon starting at the given month.
func ProjectionMonths(first calendar.MonthWindow) []calendar.MonthWindow {
	months := make([]calendar.MonthWindow, 0, HorizonMonths)
	for m, i := first, 0; i < HorizonMonths; m, i = m.Next(), i+1 {
		months = append(months, m)
	}
	return months
}

// Candidates collects evidence for the whole roster, members outer and
// months inner in ascending order. The resolver depends on this order.
func Candidates(roster []model.Member, months []calendar.MonthWindow, today calendar.Date) []Candidate {
	var out []Candidate
	for _, m := range roster {
		for _, mw := range months {
			out = append(out, ClassifyForMonth(m, mw, today)...)
		}
	}
	return out
}

// Project builds the three-month projection starting at year/month.
func Project(roster []model.Member, year, month int, today calendar.Date) (model.ProjectionReport, error) {
	first, err := calendar.ParseMonth(year, month)
	if err != nil {
		return model.ProjectionReport{}, err
	}
	months := ProjectionMonths(first)
	assignments := ResolveAssignments(Candidates(roster, months, today), first)

	out := make([]model.MonthlyProjection, len(months))
	for i, mw := range months {
		out[i] = model.MonthlyProjection{
			Year:           mw.Year,
			Month:          int(mw.Month),
			NewStarting:    emptyCategory(),
			Switching:      emptyCategory(),
			ProjectEnding:  emptyCategory(),
			ContractEnding: emptyCategory(),
		}
	}

	// Walk the roster rather than the map so member order is stable.
	seen := make(map[string]bool, len(assignments))
	for _, m := range roster {
		a, ok := assignments[m.ID]
		if !ok || seen[m.ID] {
			continue
		}
		seen[m.ID] = true

		idx := monthIndex(months, a.Month)
		if idx < 0 {
			continue
		}
		entry := model.ProjectedMember{
			ID:         m.ID,
			Name:       m.Name,
			Status:     m.Status,
			Date:       a.Date,
			Confidence: a.Confidence,
			Basis:      a.Priority.Basis(),
		}
		categoryOf(&out[idx], a.Category).Add(entry)
	}

	baseline := Baseline(roster, first)
	for i, total := range CumulativeTotals(baseline, out) {
		out[i].TotalProjected = total
	}

	return model.ProjectionReport{Baseline: baseline, Months: out}, nil
}

func emptyCategory() model.CategoryProjection {
	return model.CategoryProjection{Members: []model.ProjectedMember{}}
}

func categoryOf(p *model.MonthlyProjection, c Category) *model.CategoryProjection {
	switch c {
	case CategorySwitching:
		return &p.Switching
	case CategoryProjectEnding:
		return &p.ProjectEnding
	case CategoryContractEnding:
		return &p.ContractEnding
	default:
		return &p.NewStarting
	}
}

func monthIndex(months []calendar.MonthWindow, m calendar.MonthWindow) int {
	for i := range months {
		if months[i].Same(m) {
			return i
		}
	}
	return -1
}
