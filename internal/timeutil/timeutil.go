package timeutil

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
	// MinutesPerDay is added to a negative wall-clock difference when a
	// shift crosses midnight.
	MinutesPerDay = 24 * 60
)

// Date formats t as a canonical YYYY-MM-DD string. That form sorts
// lexicographically in chronological order, which the store relies on.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Clock formats t as a wall-clock HH:MM string.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// ParseClock parses an HH:MM string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidDate reports whether s is a canonical YYYY-MM-DD date.
func ValidDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, n).Format(dateLayout), nil
}

// MinutesBetween returns end minus start as same-day wall-clock values.
// The result is negative when end precedes start; the timer path keeps
// that raw value on purpose.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// MinutesBetweenRollover is MinutesBetween with overnight correction: a
// negative difference gains a full day, so 23:00 to 01:00 is 120 minutes.
func MinutesBetweenRollover(start, end string) (int, error) {
	m, err := MinutesBetween(start, end)
	if err != nil {
		return 0, err
	}
	if m < 0 {
		m += MinutesPerDay
	}
	return m, nil
}

// FormatMinutes formats a minute count as a human-readable string like
// "1h 40m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
