package events

import (
	"sort"
	"strings"
	"time"

	"github.com/username/agenda/pkg/dateutil"
)

// AllDaySlot is the time slot of events spanning the whole day
const AllDaySlot = "00:00"

// Kind tells how an event is rendered
type Kind int

const (
	KindEvent Kind = iota
	KindHoliday
)

// Event represents a single entry in the planner
type Event struct {
	Start    time.Time
	Duration int // minutes, 0 = all day
	Title    string
	Kind     Kind
}

// NewHoliday creates an all-day holiday event on date
func NewHoliday(date time.Time, title string) Event {
	return Event{
		Start: dateutil.StartOfDay(date),
		Title: title,
		Kind:  KindHoliday,
	}
}

// IsHoliday reports whether the event shades its day like a weekend
func (e Event) IsHoliday() bool {
	return e.Kind == KindHoliday
}

// Slot returns the "HH:MM" slot the event belongs to
func (e Event) Slot() string {
	return e.Start.Format("15:04")
}

// Slots maps a time slot ("HH:MM") to the events starting at that time
type Slots map[string][]Event

// Store maps an ISO date to the events of that day
type Store struct {
	days map[string]Slots
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		days: make(map[string]Slots),
	}
}

// Append adds event at the end of the given date and slot
func (s *Store) Append(dateKey, slot string, event Event) {
	day, ok := s.days[dateKey]
	if !ok {
		day = make(Slots)
		s.days[dateKey] = day
	}
	day[slot] = append(day[slot], event)
}

// Add files event under its own start date and slot
func (s *Store) Add(event Event) {
	s.Append(event.Start.Format(dateutil.ISODate), event.Slot(), event)
}

// GetOrEmpty returns the slots of the given date.
// Unknown dates yield an empty map; the store is never modified.
func (s *Store) GetOrEmpty(dateKey string) Slots {
	if day, ok := s.days[dateKey]; ok {
		return day
	}
	return Slots{}
}

// Len returns the number of stored events
func (s *Store) Len() int {
	n := 0
	for _, day := range s.days {
		for _, evs := range day {
			n += len(evs)
		}
	}
	return n
}

// HasHoliday reports whether any event of the date is a holiday
func (s *Store) HasHoliday(dateKey string) bool {
	for _, evs := range s.GetOrEmpty(dateKey) {
		for _, ev := range evs {
			if ev.IsHoliday() {
				return true
			}
		}
	}
	return false
}

// AllDay returns the titles of all-day events of the date, ordered by slot then insertion
func (s *Store) AllDay(dateKey string) []string {
	day := s.GetOrEmpty(dateKey)

	var titles []string
	for _, slot := range day.keys() {
		for _, ev := range day[slot] {
			if slot != AllDaySlot || ev.Duration != 0 {
				continue
			}
			titles = append(titles, ev.Title)
		}
	}
	return titles
}

// AllDayText joins the all-day titles of the date with newlines
func (s *Store) AllDayText(dateKey string) string {
	return strings.Join(s.AllDay(dateKey), "\n")
}

func (sl Slots) keys() []string {
	keys := make([]string, 0, len(sl))
	for k := range sl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
