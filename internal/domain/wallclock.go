package domain

import (
	"fmt"
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60
	DateLayout    = "2006-01-02"
)

// ParseWallClock converts "HH:MM" into seconds since midnight.
func ParseWallClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}

	h, ok := twoDigits(s[0:2])
	if !ok || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}
	m, ok := twoDigits(s[3:5])
	if !ok || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}

	return h*3600 + m*60, nil
}

// FormatSeconds converts seconds since midnight into "HH:MM", dropping leftover seconds.
func FormatSeconds(sec int) (string, error) {
	if sec < 0 || sec >= secondsPerDay {
		return "", fmt.Errorf("%w: %d", ErrTimeRange, sec)
	}
	return fmt.Sprintf("%02d:%02d", sec/3600, sec%3600/60), nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form, UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
	}
	return d, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
