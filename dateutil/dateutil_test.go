package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO(t *testing.T) {
	d, err := Parse("2022-11-30")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2022, Month: 11, Day: 30}, d)
}

func TestParseDayMonthYear(t *testing.T) {
	d, err := Parse("30 November 2022")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2022, Month: 11, Day: 30}, d)
}

func TestParseDayMonthYearWithOrdinal(t *testing.T) {
	d, err := Parse("1st January 2020")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2020, Month: 1, Day: 1}, d)
}

func TestParseMonthDayYear(t *testing.T) {
	d, err := Parse("November 30 2022")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2022, Month: 11, Day: 30}, d)
}

func TestParseInvalidDate(t *testing.T) {
	_, err := Parse("not a date")
	require.Error(t, err)
}

func TestString(t *testing.T) {
	d := Date{Year: 2022, Month: 11, Day: 30}
	assert.Equal(t, "30 November 2022", d.String())
}

func TestNextAndPrevCrossMonthBoundary(t *testing.T) {
	d := Date{Year: 2022, Month: 11, Day: 30}
	assert.Equal(t, Date{Year: 2022, Month: 12, Day: 1}, d.Next())

	jan1 := Date{Year: 2022, Month: 1, Day: 1}
	assert.Equal(t, Date{Year: 2021, Month: 12, Day: 31}, jan1.Prev())
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Date{Year: 2026, Month: 7, Day: 30}, Today(now))
}
