package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOrdinal is returned by NthWeekdayFrom when n is zero.
var ErrInvalidOrdinal = errors.New("ordinal must be a nonzero integer")

// Normalize truncates a time to midnight UTC. All calendar comparisons and
// map keys in this module use normalized dates, so a moment in time always
// maps to exactly one calendar day.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekday returns true if the date falls on the given day of the week
func IsWeekday(date time.Time, weekday time.Weekday) bool {
	return date.Weekday() == weekday
}

// NthWeekdayFrom returns the n-th occurrence of the given weekday counted
// from the reference date, which is itself excluded. n = 1 means the next
// such weekday, n = -1 the previous one; larger magnitudes step in whole
// weeks. n must be nonzero.
func NthWeekdayFrom(n int, weekday time.Weekday, ref time.Time) (time.Time, error) {
	if n == 0 {
		return time.Time{}, fmt.Errorf("nth weekday from %s: %w", ref.Format("2006-01-02"), ErrInvalidOrdinal)
	}

	ref = Normalize(ref)
	if n > 0 {
		days := (int(weekday) - int(ref.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return ref.AddDate(0, 0, days+7*(n-1)), nil
	}

	days := (int(ref.Weekday()) - int(weekday) + 7) % 7
	if days == 0 {
		days = 7
	}
	return ref.AddDate(0, 0, -(days + 7*(-n-1))), nil
}

// NextWeekday returns the first occurrence of the given weekday strictly
// after the reference date.
func NextWeekday(weekday time.Weekday, ref time.Time) time.Time {
	d, _ := NthWeekdayFrom(1, weekday, ref)
	return d
}

// PrevWeekday returns the last occurrence of the given weekday strictly
// before the reference date.
func PrevWeekday(weekday time.Weekday, ref time.Time) time.Time {
	d, _ := NthWeekdayFrom(-1, weekday, ref)
	return d
}

// Easter returns the date of Easter Sunday for the given year using the
// Meeus/Jones/Butcher algorithm. Exact for Gregorian years (1583 onward);
// earlier years are the caller's responsibility.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string in common formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Normalize(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
