package calendar

import (
	"fmt"
	"time"
)

// BankZones lists the zones known to BankCalendar
var BankZones = []string{
	"Métropole",
	"Alsace-Moselle",
	"Guadeloupe",
	"Guyane",
	"Martinique",
	"Mayotte",
	"Nouvelle-Calédonie",
	"La Réunion",
	"Polynésie Française",
	"Saint-Barthélemy",
	"Saint-Martin",
	"Saint-Pierre-et-Miquelon",
	"Wallis-et-Futuna",
}

// slavery abolition day per overseas zone
var abolitionDays = map[string]struct {
	month time.Month
	day   int
}{
	"Mayotte":          {time.April, 27},
	"Martinique":       {time.May, 22},
	"Guadeloupe":       {time.May, 27},
	"Saint-Martin":     {time.May, 28},
	"Guyane":           {time.June, 10},
	"Saint-Barthélemy": {time.October, 9},
	"La Réunion":       {time.December, 20},
}

// BankCalendar computes French bank holidays (jours fériés)
type BankCalendar struct{}

// NewBankCalendar creates a new BankCalendar
func NewBankCalendar() *BankCalendar {
	return &BankCalendar{}
}

// Holidays returns the bank holidays of year in zone, in chronological order per day
func (bc *BankCalendar) Holidays(year int, zone string) (Holidays, error) {
	canonical, ok := bc.resolveZone(zone)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	holidays := make(Holidays)
	add := func(date time.Time, label string) {
		holidays.Add(date.Format("2006-01-02"), label)
	}
	fixed := func(month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	easter := CalculateEaster(year)

	add(fixed(time.January, 1), "1er janvier")
	if canonical == "Alsace-Moselle" {
		add(easter.AddDate(0, 0, -2), "Vendredi saint")
	}
	add(easter.AddDate(0, 0, 1), "Lundi de Pâques")
	add(fixed(time.May, 1), "1er mai")
	add(fixed(time.May, 8), "8 mai")
	add(easter.AddDate(0, 0, 39), "Ascension")
	add(easter.AddDate(0, 0, 50), "Lundi de Pentecôte")
	add(fixed(time.July, 14), "14 juillet")
	add(fixed(time.August, 15), "Assomption")
	add(fixed(time.November, 1), "Toussaint")
	add(fixed(time.November, 11), "11 novembre")
	add(fixed(time.December, 25), "Jour de Noël")
	if canonical == "Alsace-Moselle" {
		add(fixed(time.December, 26), "Deuxième jour de Noël")
	}

	if abolition, ok := abolitionDays[canonical]; ok {
		add(fixed(abolition.month, abolition.day), "Abolition de l'esclavage")
	}

	return holidays, nil
}

func (bc *BankCalendar) resolveZone(zone string) (string, bool) {
	folded := foldZone(zone)
	for _, known := range BankZones {
		if foldZone(known) == folded {
			return known, true
		}
	}
	return "", false
}

// CalculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func CalculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
