// Package locale builds the localized day and month names used by the layout.
package locale

import (
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the environment does not name one
const DefaultLocale = "en_US"

// sundayFirst lists the regions whose weeks start on Sunday
var sundayFirst = map[string]bool{
	"US": true, "CA": true, "MX": true, "BR": true, "JP": true,
	"IL": true, "PH": true, "KR": true, "TW": true, "HK": true,
	"IN": true, "ZA": true, "SA": true,
}

// Names holds the localized calendar names. It is built once and never modified.
type Names struct {
	Tag          language.Tag
	Locale       string // POSIX form, e.g. fr_FR
	FirstWeekday time.Weekday

	shortDays [7]string // indexed by column
	days      [7]string // indexed by time.Weekday
	months    [12]string
}

// FromEnv builds Names from LC_ALL, LC_TIME or LANG, in that order
func FromEnv() Names {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return New(value)
		}
	}
	return New(DefaultLocale)
}

// New builds Names for a locale such as "fr_FR.UTF-8", "fr-FR" or "de".
// Unknown or empty locales fall back to DefaultLocale.
func New(name string) Names {
	tag, posix := parse(name)

	first := time.Monday
	region, _ := tag.Region()
	if sundayFirst[region.String()] {
		first = time.Sunday
	}

	n := Names{
		Tag:          tag,
		Locale:       posix,
		FirstWeekday: first,
	}

	loc := monday.Locale(posix)
	title := cases.Title(tag)

	// 2023-12-31 is a Sunday
	sunday := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		date := sunday.AddDate(0, 0, int(wd))
		n.days[wd] = title.String(monday.Format(date, "Monday", loc))
		n.shortDays[n.Column(wd)] = monday.Format(date, "Mon", loc)
	}

	for m := 1; m <= 12; m++ {
		date := time.Date(2024, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		n.months[m-1] = title.String(monday.Format(date, "January", loc))
	}

	return n
}

// Column returns the grid column (0-6) of a weekday
func (n Names) Column(wd time.Weekday) int {
	return (int(wd) - int(n.FirstWeekday) + 7) % 7
}

// ShortDay returns the abbreviated weekday name shown in a grid column
func (n Names) ShortDay(column int) string {
	return n.shortDays[column]
}

// DayName returns the full name of a weekday
func (n Names) DayName(wd time.Weekday) string {
	return n.days[wd]
}

// MonthName returns the full name of a month (1-12)
func (n Names) MonthName(month int) string {
	return n.months[month-1]
}

// IsFrench reports whether French holidays can be collected for this locale
func (n Names) IsFrench() bool {
	return n.Locale == "fr_FR"
}

// parse normalizes a POSIX or BCP 47 locale name
func parse(name string) (language.Tag, string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		name = DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		tag = language.AmericanEnglish
	}

	base, _ := tag.Base()
	region, _ := tag.Region()
	return tag, base.String() + "_" + region.String()
}
