package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	feb := MonthOf(2024, time.February)
	assert.Equal(t, "2024-02-01", feb.Start.String())
	assert.Equal(t, "2024-02-29", feb.End.String())
	assert.Equal(t, "2024-01-31", feb.LastDayOfPrevious().String())
	assert.True(t, feb.Contains(Parse("2024-02-29")))
	assert.False(t, feb.Contains(Parse("2024-03-01")))
}

func TestMonthWindow_Next(t *testing.T) {
	dec := MonthOf(2025, time.December)
	jan := dec.Next()
	assert.Equal(t, 2026, jan.Year)
	assert.Equal(t, time.January, jan.Month)
	assert.Equal(t, "2026-01-31", jan.End.String())
	assert.True(t, jan.Same(MonthOf(2026, time.January)))
	assert.False(t, jan.Same(dec))
	assert.Equal(t, "2026-01", jan.String())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth(2025, 6)
	require.NoError(t, err)
	assert.Equal(t, time.June, m.Month)

	for _, bad := range []int{0, 13, -1} {
		_, err := ParseMonth(2025, bad)
		assert.True(t, errors.Is(err, ErrMonthOutOfRange), "month %d", bad)
	}
}
