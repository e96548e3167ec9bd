package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func belizeYear(t *testing.T, year int, observed bool) *Set {
	t.Helper()
	s, err := Request("BZ", year, observed)
	require.NoError(t, err)
	return s
}

func TestBelizeBeforeIndependence(t *testing.T) {
	s := belizeYear(t, 1981, true)
	assert.Equal(t, 0, s.Len())

	s = belizeYear(t, 1950, true)
	assert.Equal(t, 0, s.Len())
}

func TestBelize1982(t *testing.T) {
	s := belizeYear(t, 1982, true)

	expected := map[string]string{
		"1982-01-01": "New Year's Day",
		"1982-03-08": "National Heroes and Benefactors Day (Observed)",
		"1982-04-09": "Good Friday",
		"1982-04-10": "Holy Saturday",
		"1982-04-12": "Easter Monday",
		"1982-05-01": "Labour Day",
		"1982-05-24": "Commonwealth Day",
		"1982-09-10": "Saint George's Caye Day",
		"1982-09-21": "Independence Day",
		"1982-10-11": "Pan American Day (Observed)",
		"1982-11-19": "Garifuna Settlement Day",
		"1982-12-25": "Christmas Day",
		"1982-12-27": "Boxing Day (Observed)",
	}

	assert.Equal(t, len(expected), s.Len())
	for d, name := range s.All() {
		assert.Equal(t, expected[d.Format("2006-01-02")], name, "unexpected holiday on %s", d.Format("2006-01-02"))
	}
}

func TestBelize2021(t *testing.T) {
	s := belizeYear(t, 2021, true)

	expected := map[string]string{
		"2021-01-01": "New Year's Day",
		"2021-01-15": "George Price Day",
		"2021-03-08": "National Heroes and Benefactors Day (Observed)",
		"2021-04-02": "Good Friday",
		"2021-04-03": "Holy Saturday",
		"2021-04-05": "Easter Monday",
		"2021-05-01": "Labour Day",
		"2021-05-24": "Commonwealth Day",
		"2021-08-02": "Emancipation Day (Observed)",
		"2021-09-10": "Saint George's Caye Day",
		"2021-09-21": "Independence Day",
		"2021-10-11": "Indigenous Peoples' Resistance Day (Observed)",
		"2021-11-19": "Garifuna Settlement Day",
		"2021-12-25": "Christmas Day",
		"2021-12-27": "Boxing Day (Observed)",
	}

	assert.Equal(t, len(expected), s.Len())
	for d, name := range s.All() {
		assert.Equal(t, expected[d.Format("2006-01-02")], name, "unexpected holiday on %s", d.Format("2006-01-02"))
	}
}

func TestBelizeGeorgePriceDayWindow(t *testing.T) {
	s := belizeYear(t, 2020, true)
	assert.False(t, s.Contains(date(2020, 1, 15)))

	s = belizeYear(t, 2021, true)
	name, ok := s.NameAt(date(2021, 1, 15))
	require.True(t, ok)
	assert.Equal(t, "George Price Day", name)
}

func TestBelizeCommonwealthEmancipationWindows(t *testing.T) {
	find := func(s *Set, want string) bool {
		for _, name := range s.All() {
			if name == want || name == want+ObservedSuffix {
				return true
			}
		}
		return false
	}

	s2020 := belizeYear(t, 2020, true)
	assert.True(t, find(s2020, "Commonwealth Day"))
	assert.False(t, find(s2020, "Emancipation Day"))

	// 2021 is the cutover year: both exist.
	s2021 := belizeYear(t, 2021, true)
	assert.True(t, find(s2021, "Commonwealth Day"))
	assert.True(t, find(s2021, "Emancipation Day"))

	s2022 := belizeYear(t, 2022, true)
	assert.False(t, find(s2022, "Commonwealth Day"))
	assert.True(t, find(s2022, "Emancipation Day"))
}

func TestBelizeOctober12Rename(t *testing.T) {
	// October 12 2020 is a Monday: no shift, pre-cutover name.
	s := belizeYear(t, 2020, true)
	name, ok := s.NameAt(date(2020, 10, 12))
	require.True(t, ok)
	assert.Equal(t, "Pan American Day", name)

	// October 12 2021 is a Tuesday: preceding Monday, post-cutover name.
	s = belizeYear(t, 2021, true)
	name, ok = s.NameAt(date(2021, 10, 11))
	require.True(t, ok)
	assert.Equal(t, "Indigenous Peoples' Resistance Day (Observed)", name)
}

func TestBelizeChristmasOnSunday(t *testing.T) {
	// December 25 2022 is a Sunday. Boxing Day is committed first and holds
	// the 26th, so Christmas Day must not also claim it.
	s := belizeYear(t, 2022, true)

	name, ok := s.NameAt(date(2022, 12, 25))
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", name)

	name, ok = s.NameAt(date(2022, 12, 26))
	require.True(t, ok)
	assert.Equal(t, "Boxing Day", name)

	assert.False(t, s.Contains(date(2022, 12, 27)))
}

func TestBelizeBoxingDayOnSunday(t *testing.T) {
	// December 26 2021 is a Sunday: Boxing Day itself shifts to Monday the
	// 27th, leaving Christmas on Saturday the 25th untouched.
	s := belizeYear(t, 2021, true)

	name, ok := s.NameAt(date(2021, 12, 27))
	require.True(t, ok)
	assert.Equal(t, "Boxing Day (Observed)", name)

	name, ok = s.NameAt(date(2021, 12, 25))
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", name)

	assert.False(t, s.Contains(date(2021, 12, 26)))
}

func TestBelizeNoCollisions(t *testing.T) {
	// A full population never trips the duplicate-date check, with and
	// without observed shifting, for every year since independence.
	for year := 1982; year <= 2030; year++ {
		for _, observed := range []bool{true, false} {
			s, err := Request("BZ", year, observed)
			require.NoError(t, err, "year %d observed %v", year, observed)
			assert.NotZero(t, s.Len(), "year %d observed %v", year, observed)
		}
	}
}

func TestBelizeObservedModeOff(t *testing.T) {
	s := belizeYear(t, 2022, false)

	// Nominal dates throughout: Labour Day stays on Sunday May 1.
	name, ok := s.NameAt(date(2022, 5, 1))
	require.True(t, ok)
	assert.Equal(t, "Labour Day", name)
	assert.False(t, s.Contains(date(2022, 5, 2)))

	for _, name := range s.All() {
		assert.NotContains(t, name, ObservedSuffix)
	}
}

func TestBelizePopulateIsDeterministic(t *testing.T) {
	a := belizeYear(t, 2024, true)
	b := belizeYear(t, 2024, true)

	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Entries(), b.Entries())
}
