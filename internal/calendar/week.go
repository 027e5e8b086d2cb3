package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrWeekOutOfRange = errors.New("week out of range")

const forecastSuffix = "(予定)"

// WeekWindow is the closed interval [Start, End], always seven days, running
// Sunday through Saturday.
type WeekWindow struct {
	Start    Date   `json:"start"`
	End      Date   `json:"end"`
	Label    string `json:"label"`
	Forecast bool   `json:"forecast"`
}

func (w WeekWindow) Contains(d Date) bool {
	return IsWithinInclusive(d, w.Start, w.End)
}

// FirstSaturday returns the first Saturday of the month.
func FirstSaturday(year int, month time.Month) Date {
	first := New(year, month, 1)
	offset := (int(time.Saturday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset)
}

// WeeksInMonth is the number of Saturdays in the month, either 4 or 5.
func WeeksInMonth(year int, month time.Month) int {
	sat := FirstSaturday(year, month)
	n := 0
	for sat.Month() == month {
		n++
		sat = sat.AddDays(7)
	}
	return n
}

// WeekNumber locates d in the Saturday-anchored calendar: the week is named
// after the month of its Saturday, and week 1 holds that month's first Saturday.
func WeekNumber(d Date) (int, time.Month, int) {
	sat := d.AddDays((int(time.Saturday) - int(d.Weekday()) + 7) % 7)
	return sat.Year(), sat.Month(), (sat.Day()-1)/7 + 1
}

// Week returns the window for week number `week` of the month.
func Week(year int, month time.Month, week int) (WeekWindow, error) {
	if n := WeeksInMonth(year, month); week < 1 || week > n {
		return WeekWindow{}, fmt.Errorf("%d-%02d week %d (has %d): %w", year, month, week, n, ErrWeekOutOfRange)
	}
	return weekEndingOn(FirstSaturday(year, month).AddDays(7 * (week - 1))), nil
}

// Shift moves the window by n whole weeks and relabels it.
func (w WeekWindow) Shift(n int) WeekWindow {
	return weekEndingOn(w.End.AddDays(7 * n))
}

// AsForecast marks the window as a forecast week.
func (w WeekWindow) AsForecast() WeekWindow {
	if !w.Forecast {
		w.Forecast = true
		w.Label += forecastSuffix
	}
	return w
}

func weekEndingOn(sat Date) WeekWindow {
	_, month, week := WeekNumber(sat)
	return WeekWindow{
		Start: sat.AddDays(-6),
		End:   sat,
		Label: WeekLabel(month, week),
	}
}

// WeekLabel formats a week as e.g. "6月3W".
func WeekLabel(month time.Month, week int) string {
	return fmt.Sprintf("%d月%dW", int(month), week)
}
