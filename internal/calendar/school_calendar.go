package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"
)

const (
	// DefaultSchoolAPIURL is the open data endpoint of the French school calendar
	DefaultSchoolAPIURL = "https://data.education.gouv.fr/api/explore/v2.1/catalog/datasets/fr-en-calendrier-scolaire/records"
	defaultHTTPTimeout  = 10 * time.Second
	defaultCacheTTL     = 30 * 24 * time.Hour
	schoolPageSize      = 100
)

// SchoolZones lists the zones known to the school calendars
var SchoolZones = []string{"A", "B", "C", "Corse"}

// SchoolCalendar implements Provider using the data.education.gouv.fr API.
// Responses are cached on disk when cacheDir is set.
type SchoolCalendar struct {
	apiURL     string
	cacheDir   string
	cacheTTL   time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	location   *time.Location
}

// schoolAPIResponse represents the records endpoint response
type schoolAPIResponse struct {
	TotalCount int              `json:"total_count"`
	Results    []schoolAPIEntry `json:"results"`
}

// schoolAPIEntry is one holiday period for one academy
type schoolAPIEntry struct {
	Description string `json:"description"`
	Population  string `json:"population"`
	StartDate   string `json:"start_date"` // RFC 3339, first day off at local midnight
	EndDate     string `json:"end_date"`   // RFC 3339, back to school at local midnight
	Zones       string `json:"zones"`
}

// NewSchoolCalendar creates a new SchoolCalendar instance
func NewSchoolCalendar(apiURL, cacheDir string, cacheTTL time.Duration, logger *zap.Logger) *SchoolCalendar {
	if apiURL == "" {
		apiURL = DefaultSchoolAPIURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	location, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		location = time.FixedZone("CET", 3600)
	}

	return &SchoolCalendar{
		apiURL:   apiURL,
		cacheDir: cacheDir,
		cacheTTL: cacheTTL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		location: location,
	}
}

// Holidays returns the school holidays of year for zone ("A", "B", "C" or "Corse")
func (sc *SchoolCalendar) Holidays(year int, zone string) (Holidays, error) {
	apiZone, ok := schoolAPIZone(zone)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	if cached, ok := sc.readCache(year, apiZone); ok {
		sc.logger.Debug("Using cached school holidays",
			zap.Int("year", year),
			zap.String("zone", apiZone))
		return cached, nil
	}

	entries, err := sc.fetch(year, apiZone)
	if err != nil {
		return nil, err
	}

	holidays, err := sc.expand(year, entries)
	if err != nil {
		return nil, err
	}

	if err := sc.writeCache(year, apiZone, holidays); err != nil {
		sc.logger.Warn("Failed to cache school holidays", zap.Error(err))
	}

	sc.logger.Info("School holidays fetched",
		zap.Int("year", year),
		zap.String("zone", apiZone),
		zap.Int("days", len(holidays)))

	return holidays, nil
}

// fetch downloads all periods of zone overlapping year
func (sc *SchoolCalendar) fetch(year int, apiZone string) ([]schoolAPIEntry, error) {
	where := fmt.Sprintf(`zones="%s" AND start_date<="%d-12-31" AND end_date>="%d-01-01"`,
		apiZone, year, year)

	var entries []schoolAPIEntry
	for offset := 0; ; offset += schoolPageSize {
		query := url.Values{}
		query.Set("where", where)
		query.Set("limit", fmt.Sprint(schoolPageSize))
		query.Set("offset", fmt.Sprint(offset))
		requestURL := sc.apiURL + "?" + query.Encode()

		sc.logger.Debug("Fetching school holidays",
			zap.String("url", requestURL),
			zap.Int("year", year))

		resp, err := sc.httpClient.Get(requestURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch school holidays: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
		}

		var apiResp schoolAPIResponse
		err = json.NewDecoder(resp.Body).Decode(&apiResp)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse API response: %w", err)
		}

		entries = append(entries, apiResp.Results...)
		if len(apiResp.Results) < schoolPageSize || len(entries) >= apiResp.TotalCount {
			break
		}
	}

	return entries, nil
}

// expand turns holiday periods into one label per day of year.
// Academies of a zone publish the same periods, so duplicates are dropped.
func (sc *SchoolCalendar) expand(year int, entries []schoolAPIEntry) (Holidays, error) {
	holidays := make(Holidays)

	for _, entry := range entries {
		// teachers-only periods are not holidays for pupils
		if strings.EqualFold(entry.Population, "Enseignants") {
			continue
		}

		start, err := time.Parse(time.RFC3339, entry.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date %q: %w", entry.StartDate, err)
		}
		end, err := time.Parse(time.RFC3339, entry.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date %q: %w", entry.EndDate, err)
		}

		first := sc.localDate(start)
		last := sc.localDate(end)
		for day := first; day.Before(last); day = day.AddDate(0, 0, 1) {
			if day.Year() != year {
				continue
			}
			key := day.Format("2006-01-02")
			if !contains(holidays[key], entry.Description) {
				holidays.Add(key, entry.Description)
			}
		}
	}

	for key := range holidays {
		sort.Strings(holidays[key])
	}

	return holidays, nil
}

// localDate returns the Paris calendar date of t at midnight UTC
func (sc *SchoolCalendar) localDate(t time.Time) time.Time {
	y, m, d := t.In(sc.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (sc *SchoolCalendar) cacheFile(year int, apiZone string) string {
	name := strings.ReplaceAll(strings.ToLower(apiZone), " ", "-")
	return filepath.Join(sc.cacheDir, fmt.Sprintf("school-%s-%d.json", name, year))
}

func (sc *SchoolCalendar) readCache(year int, apiZone string) (Holidays, bool) {
	if sc.cacheDir == "" {
		return nil, false
	}

	path := sc.cacheFile(year, apiZone)
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) > sc.cacheTTL {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var holidays Holidays
	if err := json.Unmarshal(data, &holidays); err != nil {
		sc.logger.Warn("Ignoring corrupt cache file", zap.String("file", path), zap.Error(err))
		return nil, false
	}
	return holidays, true
}

func (sc *SchoolCalendar) writeCache(year int, apiZone string, holidays Holidays) error {
	if sc.cacheDir == "" {
		return nil
	}

	if err := os.MkdirAll(sc.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(holidays)
	if err != nil {
		return fmt.Errorf("failed to marshal holidays: %w", err)
	}

	if err := os.WriteFile(sc.cacheFile(year, apiZone), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// schoolAPIZone maps a zone flag to the value used by the API
func schoolAPIZone(zone string) (string, bool) {
	folded := foldZone(strings.TrimPrefix(foldZone(zone), "zone "))
	switch folded {
	case "a", "b", "c":
		return "Zone " + strings.ToUpper(folded), true
	case "corse":
		return "Corse", true
	}
	return "", false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
