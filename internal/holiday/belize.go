package holiday

import (
	"time"
)

// Belize public and bank holidays.
//
// References:
//   - https://en.wikipedia.org/wiki/Public_holidays_in_Belize
//   - http://www.belizelaw.org/web/lawadmin/PDF%20files/cap289.pdf
//   - https://www.pressoffice.gov.bz/public-and-bank-holidays-2022-updated/
//
// Chapter 289 of the laws of Belize gives two observance rules: most
// holidays move from Sunday to the following Monday, while a listed group
// of "movable" holidays additionally moves from Friday to the following
// Monday and from Tuesday through Thursday back to the preceding Monday.
type Belize struct{}

func init() {
	Register(Belize{}, "BLZ")
}

// Code returns the ISO 3166-1 alpha-2 code for Belize.
func (Belize) Code() string { return "BZ" }

// Populate commits the Belize holidays for a year. Belize was granted
// independence on 21 September 1981; earlier years have no holidays.
func (bz Belize) Populate(s *Set, year int, observed bool) error {
	if year <= 1981 {
		return nil
	}

	p := &populator{set: s, observed: observed}
	fixed := func(m time.Month, d int) time.Time {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	}

	p.add("New Year's Day", fixed(time.January, 1))

	if year >= 2021 {
		p.add("George Price Day", fixed(time.January, 15))
	}

	p.addMovable("National Heroes and Benefactors Day", fixed(time.March, 9))

	p.add("Good Friday", GoodFriday(year))
	p.add("Holy Saturday", HolySaturday(year))
	p.add("Easter Monday", EasterMonday(year))

	p.add("Labour Day", fixed(time.May, 1))

	if year <= 2021 {
		p.addMovable("Commonwealth Day", fixed(time.May, 24))
	}
	if year >= 2021 {
		p.addMovable("Emancipation Day", fixed(time.August, 1))
	}

	p.add("Saint George's Caye Day", fixed(time.September, 10))
	p.add("Independence Day", fixed(time.September, 21))

	name := "Pan American Day"
	if year >= 2021 {
		name = "Indigenous Peoples' Resistance Day"
	}
	p.addMovable(name, fixed(time.October, 12))

	p.add("Garifuna Settlement Day", fixed(time.November, 19))

	// Boxing Day is committed before Christmas Day: when Christmas falls
	// on a Sunday its shift target is December 26, and the collision probe
	// must already see Boxing Day there.
	p.add("Boxing Day", ChristmasDayTwo(year))
	p.add("Christmas Day", ChristmasDay(year))

	return p.err
}

// populator threads one populate pass: each step routes its nominal date
// through the jurisdiction's observance rules and commits the result. The
// first failure sticks and short-circuits the remaining steps.
type populator struct {
	set      *Set
	observed bool
	err      error
}

func (p *populator) add(name string, date time.Time) {
	if p.err != nil {
		return
	}
	name, date = AdjustSimple(p.set, name, date, p.observed)
	p.err = p.set.Commit(name, date)
}

// addMovable applies the extended weekday rule and then commits through the
// same Sunday-shift path as every other holiday, mirroring the statute's
// layering. The extended rule never produces a Sunday when observed mode is
// on, so the second rule is a no-op then.
func (p *populator) addMovable(name string, date time.Time) {
	if p.err != nil {
		return
	}
	name, date = AdjustExtended(name, date, p.observed)
	p.add(name, date)
}
