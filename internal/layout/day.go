package layout

import (
	"fmt"

	"github.com/username/agenda/pkg/dateutil"
)

// Day page geometry: the condensed month sits at the top right, under the masthead
const (
	dayGridSize   = 8.0
	dayGridWidth  = 7 * dayGridSize
	dayGridHeight = 8 * dayGridSize
	dayGridX      = PageWidth - dayGridWidth - 4
	dayGridY      = 50.0
	dayLineSlots  = 30
)

// DrawDayPage adds the page of one day and returns false, drawing nothing,
// if the date does not exist.
func (r *Renderer) DrawDayPage(year, month, day int) (bool, error) {
	date, ok := dateutil.TryMakeDate(year, month, day)
	if !ok {
		return false, nil
	}
	key := dateutil.DayKey(year, month, day)

	r.surface.AddPage()
	if err := r.links.Bind(key); err != nil {
		return false, fmt.Errorf("failed to bind day page %s: %w", key, err)
	}

	r.DrawMonth(year, month, MonthOptions{
		X:              dayGridX,
		Y:              dayGridY,
		Size:           dayGridSize,
		HighlightedDay: day,
		ShowYear:       true,
	})

	// masthead: big day number and weekday name
	r.surface.SetTextColor(Black)
	r.surface.SetFont(true, 125)
	r.surface.SetXY(dayGridX, 8)
	r.surface.Cell(dayGridWidth, 50, fmt.Sprintf("%d", day), AlignCenter, false,
		r.link(dateutil.MonthKey(year, month)))

	r.surface.SetFont(true, 26)
	r.surface.SetXY(dayGridX, 0)
	r.surface.Cell(dayGridWidth, 15, r.names.DayName(date.Weekday()), AlignCenter, false,
		r.link(dateutil.YearKey(year)))

	// ruled time blocks, shortened beside the month grid
	r.surface.SetDrawColor(GrayLevel(r.style.LineColor))
	r.surface.SetLineWidth(r.style.LineWidth)
	r.surface.SetFillColor(Gray(240))
	r.surface.SetTextColor(Gray(40))

	lineHeight := PageHeight / dayLineSlots
	for i := 1; i < dayLineSlots; i++ {
		lineY := float64(i)*lineHeight + TopMargin
		if lineY > PageHeight-BottomMargin {
			break
		}

		lineX := PageWidth - RightMargin
		if lineY < dayGridY+dayGridHeight {
			lineX = dayGridX - 8
		}

		r.surface.Line(LeftMargin, lineY, lineX, lineY)
	}

	allDay := r.store.AllDayText(key)
	if allDay == "" {
		return true, nil
	}

	r.surface.SetFont(true, 16)
	r.surface.SetXY(LeftMargin, TopMargin)
	r.surface.MultiCell(dayGridX-8-LeftMargin, lineHeight/2, allDay, AlignCenter)

	return true, nil
}
