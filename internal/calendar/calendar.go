// Package calendar is the host-facing lookup layer over the holiday engine:
// a Provider computes holiday sets, and Service memoizes them per
// (jurisdiction, year, observed) request.
package calendar

import (
	"github.com/username/holiday-calendar/internal/holiday"
)

// Provider computes the holiday set for a jurisdiction and year.
type Provider interface {
	Holidays(code string, year int, observed bool) (*holiday.Set, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(code string, year int, observed bool) (*holiday.Set, error)

// Holidays calls f.
func (f ProviderFunc) Holidays(code string, year int, observed bool) (*holiday.Set, error) {
	return f(code, year, observed)
}
