// Package calendar holds the day-granular date value used across the engine
// together with the week and month windows reports are built on.
package calendar

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const layout = "2006-01-02"

type dateState uint8

const (
	stateAbsent dateState = iota
	stateValid
	stateMalformed
)

// Date is a calendar day with no time-of-day or zone. The zero value is an
// absent date. A date that failed to parse is kept as malformed so callers
// can tell "never set" apart from "set but unusable".
type Date struct {
	t     time.Time
	state dateState
}

// New returns the valid date for the given calendar day. Out-of-range days
// normalize the way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), state: stateValid}
}

// FromTime keeps the calendar day of t as seen in t's own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

// Malformed returns a date that is present but unusable.
func Malformed() Date {
	return Date{state: stateMalformed}
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(time.Now().In(loc))
}

// Parse accepts "YYYY-MM-DD" and RFC 3339 timestamps. An empty string yields
// an absent date; anything else that does not parse yields a malformed one.
func Parse(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	if d, ok := fastParseDate(s); ok {
		return d
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t)
	}
	return Malformed()
}

// fastParseDate parses "YYYY-MM-DD" without going through layout parsing.
func fastParseDate(s string) (Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return Date{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return Date{}, false
	}
	out := New(y, m, d)
	// 2025-02-30 normalizes into March; reject it.
	if out.t.Month() != m {
		return Date{}, false
	}
	return out, true
}

func (d Date) IsAbsent() bool { return d.state == stateAbsent }
func (d Date) Valid() bool { return d.state == stateValid }
func (d Date) IsMalformed() bool { return d.state == stateMalformed }

// Time returns midnight UTC of the day, or the zero time when d is not valid.
func (d Date) Time() time.Time {
	if !d.Valid() {
		return time.Time{}
	}
	return d.t
}

func (d Date) Year() int { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays shifts a valid date; other dates are returned unchanged.
func (d Date) AddDays(n int) Date {
	if !d.Valid() {
		return d
	}
	return Date{t: d.t.AddDate(0, 0, n), state: stateValid}
}

func (d Date) String() string {
	switch d.state {
	case stateValid:
		return d.t.Format(layout)
	case stateMalformed:
		return "malformed"
	default:
		return ""
	}
}

// Compare orders two valid dates: -1 if a is before b, 0 if the same day,
// +1 if after. Callers must check Valid first; non-valid dates compare as
// the zero time.
func Compare(a, b Date) int {
	return a.Time().Compare(b.Time())
}

// Before reports whether a and b are both valid and a is strictly earlier.
func Before(a, b Date) bool {
	return a.Valid() && b.Valid() && Compare(a, b) < 0
}

// Equal reports whether a and b are both valid and fall on the same day.
func Equal(a, b Date) bool {
	return a.Valid() && b.Valid() && Compare(a, b) == 0
}

// IsWithinInclusive reports whether d lies in [start, end]. Any non-valid
// argument makes the answer false.
func IsWithinInclusive(d, start, end Date) bool {
	if !d.Valid() || !start.Valid() || !end.Valid() {
		return false
	}
	return Compare(d, start) >= 0 && Compare(d, end) <= 0
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(layout))
}

// UnmarshalJSON never fails: null means absent, a string is parsed, and any
// other JSON value becomes a malformed date.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Malformed()
		return nil
	}
	*d = Parse(s)
	return nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*d = Malformed()
		return nil
	}
	if value.Tag == "!!null" {
		*d = Date{}
		return nil
	}
	*d = Parse(value.Value)
	return nil
}
