package holiday

import (
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// ObservedSuffix marks an entry whose effective date was shifted away from
// its nominal date.
const ObservedSuffix = " (Observed)"

// AdjustSimple applies the Sunday-shift rule: a holiday falling on a Sunday
// is observed the following Monday. No shift happens when observed mode is
// off, or when the Monday is already claimed by a previously committed
// holiday (no second entry is produced for it either).
//
// The collision probe reads the set as it stands mid-population, so it only
// sees entries committed by earlier steps of the same pass. Jurisdiction
// definitions order their steps with that in mind.
func AdjustSimple(s *Set, name string, date time.Time, observed bool) (string, time.Time) {
	date = dateutil.Normalize(date)
	if observed && dateutil.IsWeekday(date, time.Sunday) && !s.Contains(date.AddDate(0, 0, 1)) {
		return name + ObservedSuffix, date.AddDate(0, 0, 1)
	}
	return name, date
}

// AdjustExtended applies the statutory movable-holiday rule: falling on a
// Friday or Sunday, the holiday is observed the following Monday; falling
// on a Tuesday, Wednesday or Thursday, the preceding Monday. Saturday and
// Monday dates are never shifted. No shift happens when observed mode is
// off.
func AdjustExtended(name string, date time.Time, observed bool) (string, time.Time) {
	date = dateutil.Normalize(date)
	if !observed {
		return name, date
	}

	switch date.Weekday() {
	case time.Friday, time.Sunday:
		return name + ObservedSuffix, dateutil.NextWeekday(time.Monday, date)
	case time.Tuesday, time.Wednesday, time.Thursday:
		return name + ObservedSuffix, dateutil.PrevWeekday(time.Monday, date)
	}
	return name, date
}
