package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallClock_Valid(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"00:01": 60,
		"09:30": 9*3600 + 30*60,
		"18:00": 64800,
		"23:59": 86340,
	}

	for in, want := range cases {
		got, err := ParseWallClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseWallClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "9:30", "09:3", "0930", "ab:cd", "-1:00", "12:00:00", "12-00"} {
		_, err := ParseWallClock(in)
		assert.ErrorIs(t, err, ErrTimeFormat, in)
	}
}

func TestFormatSeconds_OutOfRange(t *testing.T) {
	_, err := FormatSeconds(-1)
	assert.ErrorIs(t, err, ErrTimeRange)

	_, err = FormatSeconds(86400)
	assert.ErrorIs(t, err, ErrTimeRange)
}

func TestFormatSeconds_TruncatesToMinute(t *testing.T) {
	got, err := FormatSeconds(64800 + 59)
	require.NoError(t, err)
	assert.Equal(t, "18:00", got)
}

func TestWallClock_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)

			sec, err := ParseWallClock(s)
			require.NoError(t, err)

			back, err := FormatSeconds(sec)
			require.NoError(t, err)
			require.Equal(t, s, back)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 1, d.YearDay())

	_, err = ParseDate("01/01/2024")
	assert.ErrorIs(t, err, ErrDateFormat)
}
