package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	withSeconds, err := ParseClock("08:15:30")
	require.NoError(t, err)
	assert.Equal(t, 8, withSeconds.Hour())
	assert.Equal(t, 15, withSeconds.Minute())
	assert.Equal(t, 30, withSeconds.Second())
	assert.Equal(t, ReferenceDate.Year(), withSeconds.Year())

	short, err := ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, short.Hour())
	assert.Equal(t, 59, short.Minute())

	for _, bad := range []string{"", "25:00", "8:00pm", "08-00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d.Weekday())

	_, err = ParseDate("01/07/2024")
	assert.Error(t, err)
}

func TestMinutesBetween(t *testing.T) {
	a, _ := ParseClock("08:00:00")
	b, _ := ParseClock("08:12:30")

	assert.Equal(t, 12.5, MinutesBetween(a, b))
	assert.Equal(t, -12.5, MinutesBetween(b, a))
}

func TestAddMinutesAndFormat(t *testing.T) {
	start, _ := ParseClock("23:50")

	assert.Equal(t, "00:20", FormatClock(AddMinutes(start, 30)))
	assert.Equal(t, "23:50", FormatClock(AddMinutes(start, 0)))
	assert.Equal(t, "23:52", FormatClock(AddMinutes(start, 2.4)))
}
