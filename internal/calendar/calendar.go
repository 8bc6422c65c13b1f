package calendar

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownZone is returned when a provider does not know the requested zone
var ErrUnknownZone = errors.New("unknown holiday zone")

// Holidays maps an ISO date (YYYY-MM-DD) to the holiday labels of that day
type Holidays map[string][]string

// Add appends label to the labels of dateKey
func (h Holidays) Add(dateKey, label string) {
	h[dateKey] = append(h[dateKey], label)
}

// Provider interface for holiday sources
type Provider interface {
	// Holidays returns the holidays of the given year for a zone
	Holidays(year int, zone string) (Holidays, error)
}

// foldZone makes zone names comparable regardless of case and accents,
// so "metropole" matches "Métropole".
func foldZone(zone string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, zone)
	if err != nil {
		folded = zone
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
