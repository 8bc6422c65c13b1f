package layout

import (
	"fmt"

	"github.com/username/agenda/pkg/dateutil"
)

const (
	yearGridSize  = 8.0
	yearGridPitch = 9 * 7 // distance between two month grids, both axes
	yearGridTop   = 20.0
)

// Month page geometry: seven columns spread over the page width
const (
	monthPageSize      = float64(int(PageWidth-LeftMargin) / 7)
	monthPageRowHeight = 36.0
	monthPageDayFont   = 12.0
)

// DrawTitle adds the title page and prints the year on it.
// The page is the target of the year link and also hosts the year overview.
func (r *Renderer) DrawTitle(year int) error {
	r.surface.AddPage()

	r.surface.SetTextColor(Black)
	r.surface.SetFont(true, 40)
	r.surface.SetXY(0, 0)
	r.surface.Cell(PageWidth, 20, dateutil.YearKey(year), AlignCenter, false, NoLink)

	if err := r.links.Bind(dateutil.YearKey(year)); err != nil {
		return fmt.Errorf("failed to bind year page: %w", err)
	}
	return nil
}

// DrawYear draws the twelve condensed months on the current page, three per row
func (r *Renderer) DrawYear(year int) {
	for i := 0; i < 12; i++ {
		r.DrawMonth(year, i+1, MonthOptions{
			X:    float64((i%3)*yearGridPitch) + LeftMargin,
			Y:    float64((i/3)*yearGridPitch) + yearGridTop,
			Size: yearGridSize,
		})
	}
}

// DrawMonthPage adds the full-page bordered view of a month
func (r *Renderer) DrawMonthPage(year, month int) error {
	key := dateutil.MonthKey(year, month)

	r.surface.AddPage()
	if err := r.links.Bind(key); err != nil {
		return fmt.Errorf("failed to bind month page %s: %w", key, err)
	}

	r.DrawMonth(year, month, MonthOptions{
		X:           LeftMargin,
		Y:           0,
		Size:        monthPageSize,
		ShowYear:    true,
		Bordered:    true,
		FullPage:    true,
		DayFontSize: monthPageDayFont,
		RowHeight:   monthPageRowHeight,
	})
	return nil
}
