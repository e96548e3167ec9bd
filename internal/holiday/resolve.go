package holiday

import (
	"fmt"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// FixedDate resolves a fixed-date holiday for a year. Unlike time.Date it
// rejects out-of-range components instead of normalizing them, so a typo in
// a rule definition fails instead of landing on a neighboring month.
func FixedDate(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || d.Month() != month {
		return time.Time{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// EasterOffset resolves a date a fixed number of days away from Easter
// Sunday of the given year.
func EasterOffset(year, days int) time.Time {
	return dateutil.Easter(year).AddDate(0, 0, days)
}

// GoodFriday is two days before Easter Sunday.
func GoodFriday(year int) time.Time { return EasterOffset(year, -2) }

// HolySaturday is the day before Easter Sunday.
func HolySaturday(year int) time.Time { return EasterOffset(year, -1) }

// EasterMonday is the day after Easter Sunday.
func EasterMonday(year int) time.Time { return EasterOffset(year, +1) }

// ChristmasDay is December 25.
func ChristmasDay(year int) time.Time {
	return time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
}

// ChristmasDayTwo is the second day of Christmas, December 26, the nominal
// date of Boxing Day style holidays. Jurisdictions that observe-shift
// Christmas commit this entry first so the Christmas Day adjustment can see
// whether December 26 is already taken.
func ChristmasDayTwo(year int) time.Time {
	return time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)
}
