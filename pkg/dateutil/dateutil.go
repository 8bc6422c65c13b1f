package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the layout used for day keys
const ISODate = "2006-01-02"

// TryMakeDate builds the date year-month-day at midnight UTC.
// Returns false if the combination is not a real calendar date (e.g. Feb 30).
func TryMakeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		// time.Date normalized an overflowing day into the next month
		return time.Time{}, false
	}

	return date, true
}

// DaysIn returns the number of days in the given month
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// YearKey formats the key of a year page: "YYYY"
func YearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthKey formats the key of a month page: "YYYY-MM"
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DayKey formats the key of a day page: "YYYY-MM-DD".
// The day is not validated, so keys exist for Feb 30 as well.
func DayKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
