package engine

import (
	"time"

	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

func d(s string) calendar.Date {
	return calendar.Parse(s)
}

func window(start, end string) calendar.WeekWindow {
	return calendar.WeekWindow{Start: d(start), End: d(end), Label: "test"}
}

func month(year int, m time.Month) calendar.MonthWindow {
	return calendar.MonthOf(year, m)
}

func member(id string, status model.Status, start, end, contract string) model.Member {
	return model.Member{
		ID:                id,
		Name:              "member " + id,
		Status:            status,
		LastWorkStartDate: d(start),
		LastWorkEndDate:   d(end),
		ContractEndDate:   d(contract),
	}
}

func ids(refs []model.MemberRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}
