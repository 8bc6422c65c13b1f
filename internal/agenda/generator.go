// Package agenda builds the complete planner document for one year.
package agenda

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/username/agenda/internal/calendar"
	"github.com/username/agenda/internal/events"
	"github.com/username/agenda/internal/layout"
	"github.com/username/agenda/internal/links"
	"github.com/username/agenda/internal/locale"
	"github.com/username/agenda/pkg/dateutil"
	"go.uber.org/zap"
)

// Document is a drawing surface that can be written out once complete
type Document interface {
	layout.Surface
	Output(path string) error
}

// Options describes one planner build
type Options struct {
	Year       int
	Output     string
	SchoolZone string
	BankZone   string
	EventsFile string
	Style      layout.Style
}

// Result summarizes a finished build
type Result struct {
	Output   string
	Pages    int
	DayPages int
	Events   int
}

// Generator sequences the pages of the planner
type Generator struct {
	doc       Document
	names     locale.Names
	collector *calendar.Collector
	logger    *zap.Logger
	progress  io.Writer
}

// NewGenerator creates a new Generator. collector may be nil when no holiday source is used.
func NewGenerator(doc Document, names locale.Names, collector *calendar.Collector, logger *zap.Logger) *Generator {
	return &Generator{
		doc:       doc,
		names:     names,
		collector: collector,
		logger:    logger,
	}
}

// SetProgress enables a progress bar on w while the month and day pages are drawn
func (g *Generator) SetProgress(w io.Writer) {
	g.progress = w
}

// Generate draws every page of the year and writes the document to opts.Output
func (g *Generator) Generate(opts Options) (*Result, error) {
	year := opts.Year
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	output := opts.Output
	if output == "" {
		output = fmt.Sprintf("agenda-%04d.pdf", year)
	}

	g.logger.Info("Generating agenda",
		zap.Int("year", year),
		zap.String("locale", g.names.Locale),
		zap.String("first_weekday", g.names.FirstWeekday.String()))

	store := events.NewStore()
	registry := links.NewRegistry(g.doc)
	renderer := layout.NewRenderer(g.doc, registry, store, g.names, opts.Style)
	result := &Result{Output: output}

	// every page link exists before the first page references one
	if err := registry.Populate(year); err != nil {
		return nil, fmt.Errorf("failed to allocate links: %w", err)
	}
	if err := renderer.DrawTitle(year); err != nil {
		return nil, err
	}
	result.Pages++

	collected, err := g.collectHolidays(year, store, opts)
	if err != nil {
		return nil, err
	}
	result.Events += collected

	if opts.EventsFile != "" {
		loaded, err := events.NewFileLoader(opts.EventsFile, g.logger).Load(year, store)
		if err != nil {
			return nil, fmt.Errorf("failed to load events: %w", err)
		}
		result.Events += loaded
	}

	renderer.DrawYear(year)

	bar := g.newProgressBar(year)
	for month := 1; month <= 12; month++ {
		if bar != nil {
			bar.Describe(g.names.MonthName(month))
		}

		if err := renderer.DrawMonthPage(year, month); err != nil {
			return nil, err
		}
		result.Pages++

		for day := 1; day <= 31; day++ {
			drawn, err := renderer.DrawDayPage(year, month, day)
			if err != nil {
				return nil, err
			}
			if !drawn {
				continue
			}
			result.Pages++
			result.DayPages++
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	g.logger.Info("Writing agenda",
		zap.String("output", output),
		zap.Int("pages", result.Pages),
		zap.Int("events", result.Events))

	if err := g.doc.Output(output); err != nil {
		return nil, fmt.Errorf("failed to write agenda: %w", err)
	}
	return result, nil
}

// collectHolidays fills store with the configured French holidays.
// Holiday zones only apply to French locales and are ignored otherwise.
func (g *Generator) collectHolidays(year int, store *events.Store, opts Options) (int, error) {
	if opts.SchoolZone == "" && opts.BankZone == "" {
		return 0, nil
	}
	if !g.names.IsFrench() {
		g.logger.Info("Holiday zones ignored, locale is not French",
			zap.String("locale", g.names.Locale),
			zap.String("school_zone", opts.SchoolZone),
			zap.String("bank_zone", opts.BankZone))
		return 0, nil
	}
	if g.collector == nil {
		return 0, fmt.Errorf("holiday zones set but no holiday sources configured")
	}

	added, err := g.collector.Collect(year, store, opts.SchoolZone, opts.BankZone)
	if err != nil {
		return 0, fmt.Errorf("failed to collect holidays: %w", err)
	}
	return added, nil
}

func (g *Generator) newProgressBar(year int) *progressbar.ProgressBar {
	if g.progress == nil {
		return nil
	}

	days := 0
	for month := 1; month <= 12; month++ {
		days += dateutil.DaysIn(year, month)
	}

	return progressbar.NewOptions(days,
		progressbar.OptionSetWriter(g.progress),
		progressbar.OptionSetDescription(fmt.Sprintf("Agenda %04d", year)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
