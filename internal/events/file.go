package events

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileEntry is one entry of a user events file
type fileEntry struct {
	Date     string `yaml:"date"`               // YYYY-MM-DD
	Time     string `yaml:"time,omitempty"`     // HH:MM, empty = all day
	Duration int    `yaml:"duration,omitempty"` // minutes
	Title    string `yaml:"title"`
	Holiday  bool   `yaml:"holiday,omitempty"`
}

type fileData struct {
	Events []fileEntry `yaml:"events"`
}

// FileLoader reads user events from a YAML file
type FileLoader struct {
	filePath string
	logger   *zap.Logger
}

// NewFileLoader creates a new FileLoader
func NewFileLoader(filePath string, logger *zap.Logger) *FileLoader {
	return &FileLoader{
		filePath: filePath,
		logger:   logger,
	}
}

// Load appends the events of the given year to store and returns how many were added.
// Entries that cannot be parsed are logged and skipped.
func (fl *FileLoader) Load(year int, store *Store) (int, error) {
	data, err := os.ReadFile(fl.filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read events file: %w", err)
	}

	var parsed fileData
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse events file: %w", err)
	}

	added := 0
	for _, entry := range parsed.Events {
		event, err := entry.toEvent()
		if err != nil {
			fl.logger.Warn("Skipping event", zap.String("date", entry.Date), zap.Error(err))
			continue
		}
		if event.Start.Year() != year {
			continue
		}

		store.Add(event)
		added++
	}

	fl.logger.Info("Events file loaded",
		zap.String("file", fl.filePath),
		zap.Int("events", added))

	return added, nil
}

func (e fileEntry) toEvent() (Event, error) {
	layout, value := "2006-01-02", e.Date
	if e.Time != "" {
		layout, value = "2006-01-02 15:04", e.Date+" "+e.Time
	}

	start, err := time.Parse(layout, value)
	if err != nil {
		return Event{}, fmt.Errorf("invalid date or time: %w", err)
	}
	if e.Title == "" {
		return Event{}, fmt.Errorf("missing title")
	}
	if e.Duration < 0 {
		return Event{}, fmt.Errorf("negative duration %d", e.Duration)
	}

	kind := KindEvent
	if e.Holiday {
		kind = KindHoliday
	}

	return Event{
		Start:    start,
		Duration: e.Duration,
		Title:    e.Title,
		Kind:     kind,
	}, nil
}
