package layout

import (
	"fmt"
	"time"

	"github.com/username/agenda/pkg/dateutil"
)

// monthColors is the header background of each month, index 0 unused
var monthColors = [13]Color{
	{},
	{180, 180, 180},
	{128, 0, 128},
	{0, 128, 0},
	{155, 255, 100},
	{250, 128, 114},
	{0, 0, 255},
	{255, 0, 0},
	{255, 215, 0},
	{80, 200, 212},
	{255, 165, 0},
	{0, 0, 0},
	{178, 34, 34},
}

// holidayColor shades weekends and holidays
var holidayColor = Gray(180)

// MonthColor returns the header color of month (1-12)
func MonthColor(month int) Color {
	return monthColors[month]
}

// GridCell is the position of one day in a month grid
type GridCell struct {
	Day    int
	Date   time.Time
	Column int // 0 = first day of the week
	Row    int
}

// MonthGrid computes the grid position of every valid day of the month.
// Rows only advance when a day lands back on column 0, so short months
// take fewer rows and invalid days leave no gap.
func MonthGrid(year, month int, firstWeekday time.Weekday) []GridCell {
	cells := make([]GridCell, 0, 31)
	row := 0

	for day := 1; day <= 31; day++ {
		date, ok := dateutil.TryMakeDate(year, month, day)
		if !ok {
			continue
		}

		column := (int(date.Weekday()) - int(firstWeekday) + 7) % 7
		if column == 0 && day != 1 {
			row++
		}

		cells = append(cells, GridCell{
			Day:    day,
			Date:   date,
			Column: column,
			Row:    row,
		})
	}

	return cells
}

// MonthOptions controls how a month grid is drawn
type MonthOptions struct {
	X, Y float64
	Size float64 // cell width, also the base for fonts and header heights

	HighlightedDay int  // day drawn in bold, 0 for none
	ShowYear       bool // append the year to the header
	Bordered       bool // draw cell borders and all-day event titles
	FullPage       bool // header links to the year page instead of the month page

	DayFontSize float64 // 0 = 1.8 x Size
	RowHeight   float64 // 0 = Size
}

// DrawMonth draws the grid of one month at the given origin and returns the
// number of day cells drawn.
func (r *Renderer) DrawMonth(year, month int, opts MonthOptions) int {
	size := opts.Size
	rowHeight := opts.RowHeight
	if rowHeight == 0 {
		rowHeight = size
	}
	dayFont := opts.DayFontSize
	if dayFont == 0 {
		dayFont = size * 1.8
	}

	x, y := opts.X, opts.Y

	// header band
	header := r.names.MonthName(month)
	if opts.ShowYear {
		header = fmt.Sprintf("%s %04d", header, year)
	}
	headerKey := dateutil.MonthKey(year, month)
	if opts.FullPage {
		headerKey = dateutil.YearKey(year)
	}

	r.surface.SetFont(true, 2*size)
	r.surface.SetTextColor(White)
	r.surface.SetFillColor(MonthColor(month))
	r.surface.SetXY(x, y)
	r.surface.Cell(7*size, 1.5*size, header, AlignCenter, true, r.link(headerKey))

	y += 1.5 * size

	// weekday names
	r.surface.SetFillColor(White)
	r.surface.SetTextColor(Black)
	r.surface.SetFont(false, size)
	for column := 0; column < 7; column++ {
		r.surface.SetXY(x+float64(column)*size, y)
		r.surface.Cell(size, size*0.5, r.names.ShortDay(column), AlignCenter, true, NoLink)
	}

	y += size * 0.5

	// days
	cells := MonthGrid(year, month, r.names.FirstWeekday)
	for _, cell := range cells {
		dayX := x + float64(cell.Column)*size
		dayY := y + float64(cell.Row)*rowHeight
		key := cell.Date.Format(dateutil.ISODate)

		if opts.Bordered {
			r.surface.Rect(dayX, dayY, size, rowHeight, false)
		}

		if dateutil.IsWeekend(cell.Date) || r.store.HasHoliday(key) {
			r.surface.SetTextColor(Black)
			r.surface.SetFillColor(holidayColor)
			r.surface.Rect(dayX, dayY, size, rowHeight, true)
		}

		r.surface.SetXY(dayX, dayY)
		r.surface.SetFont(cell.Day == opts.HighlightedDay, dayFont)
		r.surface.Cell(size, dayFont/2+1.5, fmt.Sprintf("%d", cell.Day), AlignRight, false, r.link(key))

		if !opts.Bordered {
			continue
		}

		allDay := r.store.AllDayText(key)
		if allDay == "" {
			continue
		}

		r.surface.SetFont(false, dayFont*0.8)
		r.surface.SetXY(dayX+1, dayY+dayFont/2+2)
		r.surface.MultiCell(size, dayFont/3, allDay, AlignLeft)
	}

	return len(cells)
}
