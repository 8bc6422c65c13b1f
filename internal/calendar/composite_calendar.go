package calendar

import (
	"fmt"

	"go.uber.org/zap"
)

// CompositeCalendar implements Provider with fallback strategy
// Primary: SchoolCalendar (API)
// Fallback: FileCalendar (local file)
type CompositeCalendar struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Provider, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Holidays returns the primary holidays, or the fallback ones if the primary fails
func (cc *CompositeCalendar) Holidays(year int, zone string) (Holidays, error) {
	// Try primary first
	holidays, err := cc.primary.Holidays(year, zone)
	if err == nil {
		return holidays, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back to file",
		zap.Int("year", year),
		zap.String("zone", zone),
		zap.Error(err))

	// Fallback to file
	holidays, fallbackErr := cc.fallback.Holidays(year, zone)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
	}
	return holidays, nil
}

// LoadFallback loads the fallback calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadFallback() error {
	if fc, ok := cc.fallback.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load fallback calendar: %w", err)
		}
		cc.logger.Info("Fallback calendar loaded successfully")
	}
	return nil
}
