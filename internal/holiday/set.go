// Package holiday implements a public-holiday calendar engine: a per-year
// set of (date, name) entries, resolvers for fixed and movable dates, and
// the observed-date adjustment policies jurisdiction definitions combine to
// populate a year.
package holiday

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

var (
	// ErrDuplicateDate indicates two commits targeting the same date.
	// This is a rule-authoring defect in a jurisdiction definition, not a
	// recoverable runtime condition.
	ErrDuplicateDate = errors.New("holiday: duplicate date")

	// ErrUnknownJurisdiction indicates a request for an unregistered
	// jurisdiction code.
	ErrUnknownJurisdiction = errors.New("holiday: unknown jurisdiction")

	// ErrInvalidDate indicates an out-of-range month or day passed to a
	// fixed-date resolver.
	ErrInvalidDate = errors.New("holiday: invalid date")
)

// Entry is a single resolved holiday.
type Entry struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// Set holds the holidays of one jurisdiction for one year. It is populated
// by a single synchronous pass and must be treated as read-only afterward;
// a populated Set is safe to share between goroutines.
type Set struct {
	code    string
	year    int
	entries map[time.Time]string
}

// NewSet returns an empty set for the given jurisdiction code and year.
func NewSet(code string, year int) *Set {
	return &Set{
		code:    code,
		year:    year,
		entries: make(map[time.Time]string),
	}
}

// Commit inserts a holiday into the set. Committing a second entry for an
// already-occupied date returns ErrDuplicateDate: jurisdiction definitions
// order their insertions so that this never fires for legitimate rules, and
// a firing must surface rather than silently overwrite.
func (s *Set) Commit(name string, date time.Time) error {
	d := dateutil.Normalize(date)
	if existing, ok := s.entries[d]; ok {
		return fmt.Errorf("%w: %s already holds %q, refusing %q",
			ErrDuplicateDate, d.Format("2006-01-02"), existing, name)
	}
	s.entries[d] = name
	return nil
}

// Contains reports whether the date is a holiday in this set.
func (s *Set) Contains(date time.Time) bool {
	_, ok := s.entries[dateutil.Normalize(date)]
	return ok
}

// NameAt returns the holiday name for the date, if any.
func (s *Set) NameAt(date time.Time) (string, bool) {
	name, ok := s.entries[dateutil.Normalize(date)]
	return name, ok
}

// All iterates over the entries in ascending date order. The sequence is
// restartable; insertion order is not observable through it.
func (s *Set) All() iter.Seq2[time.Time, string] {
	return func(yield func(time.Time, string) bool) {
		dates := make([]time.Time, 0, len(s.entries))
		for d := range s.entries {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		for _, d := range dates {
			if !yield(d, s.entries[d]) {
				return
			}
		}
	}
}

// Entries returns the entries as a sorted slice, for callers that need a
// concrete value (JSON output, templates).
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for d, name := range s.All() {
		out = append(out, Entry{Date: d, Name: name})
	}
	return out
}

// Len returns the number of holidays in the set.
func (s *Set) Len() int { return len(s.entries) }

// Jurisdiction returns the jurisdiction code the set was built for.
func (s *Set) Jurisdiction() string { return s.code }

// Year returns the year the set was built for.
func (s *Set) Year() int { return s.year }
