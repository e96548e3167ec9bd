package calendar

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/holiday"
)

type cacheKey struct {
	code     string
	year     int
	observed bool
}

// Service answers holiday lookups through a Provider, caching each computed
// set. Holiday computation is deterministic, so cached entries never go
// stale and there is no TTL; ClearCache exists for hosts that re-register
// jurisdiction data.
type Service struct {
	provider Provider
	logger   *zap.Logger
	cacheMu  sync.RWMutex
	cache    map[cacheKey]*holiday.Set
}

// NewService creates a Service backed by the given provider.
func NewService(provider Provider, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		cache:    make(map[cacheKey]*holiday.Set),
	}
}

// Holidays returns the holiday set for a jurisdiction and year, computing
// it on first request and serving the cached set afterward.
func (s *Service) Holidays(code string, year int, observed bool) (*holiday.Set, error) {
	key := cacheKey{code: strings.ToUpper(code), year: year, observed: observed}

	s.cacheMu.RLock()
	if set, ok := s.cache[key]; ok {
		s.cacheMu.RUnlock()
		s.logger.Debug("Using cached holiday set",
			zap.String("jurisdiction", key.code),
			zap.Int("year", year),
			zap.Bool("observed", observed))
		return set, nil
	}
	s.cacheMu.RUnlock()

	set, err := s.provider.Holidays(code, year, observed)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[key] = set
	s.cacheMu.Unlock()

	s.logger.Info("Holiday set computed and cached",
		zap.String("jurisdiction", set.Jurisdiction()),
		zap.Int("year", year),
		zap.Bool("observed", observed),
		zap.Int("holidays", set.Len()))

	return set, nil
}

// IsHoliday reports whether the date is a holiday in the jurisdiction and
// returns the holiday's name when it is.
func (s *Service) IsHoliday(code string, date time.Time, observed bool) (bool, string, error) {
	set, err := s.Holidays(code, date.Year(), observed)
	if err != nil {
		return false, "", err
	}

	name, ok := set.NameAt(date)
	return ok, name, nil
}

// ClearCache drops all cached holiday sets.
func (s *Service) ClearCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache = make(map[cacheKey]*holiday.Set)
	s.logger.Info("Holiday cache cleared")
}
