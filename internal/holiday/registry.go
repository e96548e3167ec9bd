package holiday

import (
	"fmt"
	"sort"
	"strings"
)

// Jurisdiction defines the holidays of one country or subdivision. Populate
// commits every holiday the jurisdiction observes in the given year into
// the set, in an order of its choosing; the engine never reorders.
type Jurisdiction interface {
	Code() string
	Populate(s *Set, year int, observed bool) error
}

var registry = make(map[string]Jurisdiction)

// Register adds a jurisdiction to the static catalog under its code and any
// alias codes. Called from init functions of definition files.
func Register(j Jurisdiction, aliases ...string) {
	registry[j.Code()] = j
	for _, a := range aliases {
		registry[a] = j
	}
}

// Codes returns the sorted list of registered codes, aliases included.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Request builds the holiday set for a jurisdiction and year. Codes are
// case-insensitive. An unregistered code returns ErrUnknownJurisdiction; a
// populate failure returns no partial result.
func Request(code string, year int, observed bool) (*Set, error) {
	j, ok := registry[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
	}

	s := NewSet(j.Code(), year)
	if err := j.Populate(s, year, observed); err != nil {
		return nil, fmt.Errorf("populate %s %d: %w", j.Code(), year, err)
	}
	return s, nil
}
