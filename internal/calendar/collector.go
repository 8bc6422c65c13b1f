package calendar

import (
	"fmt"

	"github.com/username/agenda/internal/events"
	"github.com/username/agenda/pkg/dateutil"
	"go.uber.org/zap"
)

// Collector fills an event store from school and bank holiday providers
type Collector struct {
	school Provider
	bank   Provider
	logger *zap.Logger
}

// NewCollector creates a new Collector. Either provider may be nil.
func NewCollector(school, bank Provider, logger *zap.Logger) *Collector {
	return &Collector{
		school: school,
		bank:   bank,
		logger: logger,
	}
}

// Collect appends all-day holiday events of year to store and returns how many were added.
// An empty zone disables the matching provider.
func (c *Collector) Collect(year int, store *events.Store, schoolZone, bankZone string) (int, error) {
	var school, bank Holidays

	if schoolZone != "" && c.school != nil {
		h, err := c.school.Holidays(year, schoolZone)
		if err != nil {
			return 0, fmt.Errorf("failed to get school holidays: %w", err)
		}
		school = h
	}

	if bankZone != "" && c.bank != nil {
		h, err := c.bank.Holidays(year, bankZone)
		if err != nil {
			return 0, fmt.Errorf("failed to get bank holidays: %w", err)
		}
		bank = h
	}

	added := 0
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 31; day++ {
			date, ok := dateutil.TryMakeDate(year, month, day)
			if !ok {
				continue
			}
			key := date.Format(dateutil.ISODate)

			for _, label := range school[key] {
				store.Append(key, events.AllDaySlot, events.NewHoliday(date, label))
				added++
			}
			for _, label := range bank[key] {
				store.Append(key, events.AllDaySlot, events.NewHoliday(date, label))
				added++
			}
		}
	}

	c.logger.Info("Holidays collected",
		zap.Int("year", year),
		zap.String("school_zone", schoolZone),
		zap.String("bank_zone", bankZone),
		zap.Int("events", added))

	return added, nil
}
