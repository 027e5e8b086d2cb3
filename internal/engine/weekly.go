package engine

import (
	"time"

	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

// Weeks shown before the selected week in a weekly report.
const weeksBefore = 2

// WeekMatch is the set of weekly categories one member falls into. Any
// combination is possible except NewStart together with Switching.
type WeekMatch struct {
	NewStart        bool
	Switching       bool
	ProjectEnd      bool
	ContractEnd     bool
	CounselingStart bool
}

func (w WeekMatch) Any() bool {
	return w.NewStart || w.Switching || w.ProjectEnd || w.ContractEnd || w.CounselingStart
}

// ClassifyForWeek decides which weekly categories the member belongs to for
// the window.
func ClassifyForWeek(m model.Member, w calendar.WeekWindow) WeekMatch {
	start := m.LastWorkStartDate
	end := m.LastWorkEndDate
	contract := m.ContractEndDate

	var out WeekMatch

	if w.Contains(start) {
		switch {
		case end.IsAbsent(), end.Valid() && calendar.Compare(end, start) >= 0:
			out.NewStart = true
		case calendar.Before(end, start):
			out.Switching = true
		}
	}

	// A project end on the contract end date is reported as a contract end only.
	if w.Contains(end) && !calendar.Equal(contract, end) {
		out.ProjectEnd = true
	}

	out.ContractEnd = w.Contains(contract)
	out.CounselingStart = w.Contains(m.FirstCounselingDate)

	return out
}

// SummarizeWeek classifies the whole roster for one window.
func SummarizeWeek(roster []model.Member, w calendar.WeekWindow) model.WeeklyClassificationResult {
	res := model.WeeklyClassificationResult{
		Week:                     w,
		TotalWorkers:             CountActive(roster, w.End),
		NewStartedMembers:        []model.MemberRef{},
		SwitchingMembers:         []model.MemberRef{},
		ProjectEndedMembers:      []model.MemberRef{},
		ContractEndedMembers:     []model.MemberRef{},
		CounselingStartedMembers: []model.MemberRef{},
	}

	for _, m := range roster {
		match := ClassifyForWeek(m, w)
		if !match.Any() {
			continue
		}
		if match.NewStart {
			res.NewStartedMembers = append(res.NewStartedMembers, model.RefOf(m, m.LastWorkStartDate))
		}
		if match.Switching {
			res.SwitchingMembers = append(res.SwitchingMembers, model.RefOf(m, m.LastWorkStartDate))
		}
		if match.ProjectEnd {
			res.ProjectEndedMembers = append(res.ProjectEndedMembers, model.RefOf(m, m.LastWorkEndDate))
		}
		if match.ContractEnd {
			res.ContractEndedMembers = append(res.ContractEndedMembers, model.RefOf(m, m.ContractEndDate))
		}
		if match.CounselingStart {
			res.CounselingStartedMembers = append(res.CounselingStartedMembers, model.RefOf(m, m.FirstCounselingDate))
		}
	}

	res.NewStarted = len(res.NewStartedMembers)
	res.Switching = len(res.SwitchingMembers)
	res.ProjectEnded = len(res.ProjectEndedMembers)
	res.ContractEnded = len(res.ContractEndedMembers)
	res.CounselingStarted = len(res.CounselingStartedMembers)
	res.TotalStarted = res.NewStarted + res.Switching
	res.TotalEnded = res.ProjectEnded + res.ContractEnded

	return res
}

// WeekWindows returns the four windows of a weekly report: two weeks before
// the selected week, the selected week, and one forecast week after it.
func WeekWindows(year int, month time.Month, week int) ([]calendar.WeekWindow, error) {
	selected, err := calendar.Week(year, month, week)
	if err != nil {
		return nil, err
	}
	windows := make([]calendar.WeekWindow, 0, weeksBefore+2)
	for i := -weeksBefore; i <= 0; i++ {
		windows = append(windows, selected.Shift(i))
	}
	return append(windows, selected.Shift(1).AsForecast()), nil
}

// BuildWeeklyReport classifies the roster over the four-week window around
// the selected week of the month.
func BuildWeeklyReport(roster []model.Member, year, month, week int) (model.WeeklyReport, error) {
	mw, err := calendar.ParseMonth(year, month)
	if err != nil {
		return model.WeeklyReport{}, err
	}
	windows, err := WeekWindows(mw.Year, mw.Month, week)
	if err != nil {
		return model.WeeklyReport{}, err
	}

	details := make([]model.WeeklyClassificationResult, 0, len(windows))
	for _, w := range windows {
		details = append(details, SummarizeWeek(roster, w))
	}

	return model.WeeklyReport{
		Year:         year,
		Month:        month,
		SelectedWeek: week,
		WeekDetails:  details,
	}, nil
}

// DefaultWeek picks the week of the month holding `today`, or week 1 when
// today is in a different month.
func DefaultWeek(year, month int, today calendar.Date) int {
	y, m, w := calendar.WeekNumber(today)
	if y == year && int(m) == month {
		return w
	}
	return 1
}
