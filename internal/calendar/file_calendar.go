package calendar

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar implements Provider for school holidays using a local CSV file.
//
// Format (header required):
//
//	date,vacances_zone_a,vacances_zone_b,vacances_zone_c,nom_vacances
//	2024-02-10,False,False,True,Vacances d'hiver
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]map[string]string // zone letter -> date -> label
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]map[string]string),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read calendar header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"date", "nom_vacances"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("calendar file is missing column %q", required)
		}
	}

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading calendar file: %w", err)
		}

		dateStr := record[columns["date"]]
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", dateStr), zap.Error(err))
			continue
		}
		label := record[columns["nom_vacances"]]

		for _, zone := range []string{"a", "b", "c"} {
			col, ok := columns["vacances_zone_"+zone]
			if !ok || col >= len(record) {
				continue
			}
			onHoliday, err := strconv.ParseBool(strings.TrimSpace(record[col]))
			if err != nil || !onHoliday {
				continue
			}
			if fc.data[zone] == nil {
				fc.data[zone] = make(map[string]string)
			}
			fc.data[zone][dateStr] = label
		}
		rows++
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("rows", rows))

	return nil
}

// Holidays returns the school holidays of year for zone ("A", "B" or "C")
func (fc *FileCalendar) Holidays(year int, zone string) (Holidays, error) {
	letter := strings.TrimPrefix(foldZone(zone), "zone ")
	days, ok := fc.data[letter]
	if !ok {
		return nil, fmt.Errorf("%w: %q not found in %s", ErrUnknownZone, zone, fc.filePath)
	}

	prefix := fmt.Sprintf("%04d-", year)
	holidays := make(Holidays)
	for date, label := range days {
		if strings.HasPrefix(date, prefix) {
			holidays.Add(date, label)
		}
	}

	return holidays, nil
}
