package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrMonthOutOfRange = errors.New("month out of range")

// MonthWindow is the closed interval from the first to the last day of a month.
type MonthWindow struct {
	Year  int
	Month time.Month
	Start Date
	End   Date
}

func ParseMonth(year, month int) (MonthWindow, error) {
	if month < 1 || month > 12 {
		return MonthWindow{}, fmt.Errorf("month %d: %w", month, ErrMonthOutOfRange)
	}
	return MonthOf(year, time.Month(month)), nil
}

func MonthOf(year int, month time.Month) MonthWindow {
	start := New(year, month, 1)
	return MonthWindow{
		Year:  start.Year(),
		Month: start.Month(),
		Start: start,
		End:   New(year, month+1, 0),
	}
}

func (m MonthWindow) Contains(d Date) bool {
	return IsWithinInclusive(d, m.Start, m.End)
}

// Next returns the month after m, rolling over the year.
func (m MonthWindow) Next() MonthWindow {
	return MonthOf(m.Year, m.Month+1)
}

// Same reports whether both windows cover the same month.
func (m MonthWindow) Same(o MonthWindow) bool {
	return m.Year == o.Year && m.Month == o.Month
}

// LastDayOfPrevious is the final day of the month before m.
func (m MonthWindow) LastDayOfPrevious() Date {
	return m.Start.AddDays(-1)
}

func (m MonthWindow) String() string {
	return fmt.Sprintf("%d-%02d", m.Year, int(m.Month))
}
