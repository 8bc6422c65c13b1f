package events

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestStore_GetOrEmpty(t *testing.T) {
	store := NewStore()

	slots := store.GetOrEmpty("2024-07-14")
	if slots == nil {
		t.Fatal("GetOrEmpty() returned nil map")
	}
	if len(slots) != 0 {
		t.Errorf("GetOrEmpty() len = %d, want 0", len(slots))
	}

	// lookups must not insert entries
	if len(store.days) != 0 {
		t.Errorf("GetOrEmpty() inserted %d days into the store", len(store.days))
	}
	if store.HasHoliday("2024-07-14") {
		t.Error("HasHoliday() = true on empty store")
	}
	if got := store.AllDay("2024-07-14"); len(got) != 0 {
		t.Errorf("AllDay() = %v, want empty", got)
	}
	if len(store.days) != 0 {
		t.Errorf("read accessors inserted %d days into the store", len(store.days))
	}
}

func TestStore_AppendPreservesOrder(t *testing.T) {
	store := NewStore()
	date := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)

	store.Append("2024-05-08", AllDaySlot, NewHoliday(date, "Victoire 1945"))
	store.Append("2024-05-08", AllDaySlot, NewHoliday(date, "Vacances de Printemps"))
	store.Append("2024-05-08", AllDaySlot, Event{Start: date, Title: "Anniversaire"})

	got := store.AllDay("2024-05-08")
	want := []string{"Victoire 1945", "Vacances de Printemps", "Anniversaire"}
	if len(got) != len(want) {
		t.Fatalf("AllDay() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllDay()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if text := store.AllDayText("2024-05-08"); text != "Victoire 1945\nVacances de Printemps\nAnniversaire" {
		t.Errorf("AllDayText() = %q", text)
	}
	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3", store.Len())
	}
}

func TestStore_AllDayFilter(t *testing.T) {
	store := NewStore()
	midnight := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	store.Add(Event{Start: midnight, Duration: 0, Title: "all day"})
	store.Add(Event{Start: midnight, Duration: 90, Title: "midnight run"})
	store.Add(Event{Start: midnight.Add(14 * time.Hour), Duration: 0, Title: "afternoon"})

	got := store.AllDay("2024-03-05")
	if len(got) != 1 || got[0] != "all day" {
		t.Errorf("AllDay() = %v, want [all day]", got)
	}

	slots := store.GetOrEmpty("2024-03-05")
	if len(slots[AllDaySlot]) != 2 {
		t.Errorf("slot %s has %d events, want 2", AllDaySlot, len(slots[AllDaySlot]))
	}
	if len(slots["14:00"]) != 1 {
		t.Errorf("slot 14:00 has %d events, want 1", len(slots["14:00"]))
	}
}

func TestStore_HasHoliday(t *testing.T) {
	store := NewStore()
	date := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)

	store.Add(Event{Start: date, Title: "Picnic"})
	if store.HasHoliday("2024-07-14") {
		t.Error("HasHoliday() = true for a plain event")
	}

	store.Add(NewHoliday(date, "Bastille Day"))
	if !store.HasHoliday("2024-07-14") {
		t.Error("HasHoliday() = false after adding a holiday")
	}
}

func TestFileLoader_Load(t *testing.T) {
	content := `events:
  - date: 2024-07-14
    title: Bastille Day
    holiday: true
  - date: 2024-03-05
    time: "14:30"
    duration: 60
    title: Dentist
  - date: 2024-02-30
    title: Not a day
  - date: 2023-12-25
    title: Other year
  - date: 2024-01-01
`
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore()
	loader := NewFileLoader(path, zap.NewNop())

	added, err := loader.Load(2024, store)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if added != 2 {
		t.Errorf("Load() added = %d, want 2", added)
	}

	if !store.HasHoliday("2024-07-14") {
		t.Error("Bastille Day should be a holiday")
	}
	if got := store.GetOrEmpty("2024-03-05")["14:30"]; len(got) != 1 || got[0].Duration != 60 {
		t.Errorf("timed event = %+v", got)
	}
	if got := store.AllDay("2024-03-05"); len(got) != 0 {
		t.Errorf("timed event listed as all day: %v", got)
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop())
	if _, err := loader.Load(2024, NewStore()); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
