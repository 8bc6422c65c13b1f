package layout

import (
	"errors"
	"testing"
	"time"

	"github.com/username/agenda/internal/events"
	"github.com/username/agenda/internal/links"
	"github.com/username/agenda/internal/locale"
	"github.com/username/agenda/pkg/dateutil"
)

func TestDrawDayPage_InvalidDate(t *testing.T) {
	r, surface, registry := newTestRenderer(t, 2023, nil, locale.New("en_GB"))

	drawn, err := r.DrawDayPage(2023, 2, 29)
	if err != nil {
		t.Fatalf("DrawDayPage() error = %v", err)
	}
	if drawn {
		t.Error("DrawDayPage(2023-02-29) = true, want false")
	}
	if surface.page != 0 || len(surface.ops) != 0 {
		t.Errorf("invalid day drew %d pages and %d operations", surface.page, len(surface.ops))
	}
	if registry.IsBound("2023-02-29") {
		t.Error("invalid day link was bound")
	}
}

func TestDrawDayPage_Layout(t *testing.T) {
	r, surface, registry := newTestRenderer(t, 2024, nil, locale.New("en_GB"))

	drawn, err := r.DrawDayPage(2024, 2, 29)
	if err != nil {
		t.Fatalf("DrawDayPage() error = %v", err)
	}
	if !drawn {
		t.Fatal("DrawDayPage(2024-02-29) = false, want true")
	}

	if surface.page != 1 {
		t.Errorf("pages = %d, want 1", surface.page)
	}
	if got := surface.targets[int(registry.MustResolve("2024-02-29"))]; got != 1 {
		t.Errorf("day link targets page %d, want 1", got)
	}

	// condensed month with the day highlighted
	cells := dayCells(t, surface, registry, 2024, 2)
	if len(cells) != 29 {
		t.Errorf("condensed month drew %d days, want 29", len(cells))
	}
	if !cells[29].bold || cells[28].bold {
		t.Error("only the page's day should be bold")
	}

	var number, weekday *drawOp
	for _, op := range surface.filter("cell") {
		op := op
		switch {
		case op.text == "29" && op.h == 50:
			number = &op
		case op.text == "Thursday":
			weekday = &op
		}
	}
	if number == nil || number.link != int(registry.MustResolve("2024-02")) {
		t.Errorf("day number cell = %+v, want link to month page", number)
	}
	if weekday == nil || weekday.link != int(registry.MustResolve("2024")) {
		t.Errorf("weekday cell = %+v, want link to year page", weekday)
	}

	lines := surface.filter("line")
	if len(lines) != 25 {
		t.Fatalf("ruled lines = %d, want 25", len(lines))
	}
	for i, line := range lines {
		if line.x != LeftMargin {
			t.Errorf("line %d starts at %v, want %v", i, line.x, LeftMargin)
		}
		if line.y > PageHeight-BottomMargin {
			t.Errorf("line %d at y=%v is below the bottom margin", i, line.y)
		}

		want := PageWidth - RightMargin
		if line.y < dayGridY+dayGridHeight {
			want = dayGridX - 8
		}
		if line.x2 != want {
			t.Errorf("line %d at y=%v ends at %v, want %v", i, line.y, line.x2, want)
		}
	}
	if lines[0].x2 != dayGridX-8 || lines[len(lines)-1].x2 != PageWidth-RightMargin {
		t.Error("ruled lines should be short beside the month grid and full width below it")
	}

	if n := len(surface.filter("multicell")); n != 0 {
		t.Errorf("day without events drew %d text blocks", n)
	}
}

func TestDrawDayPage_AllDayEvents(t *testing.T) {
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	store := events.NewStore()
	store.Add(events.NewHoliday(date, "Vacances de Noël"))
	store.Add(events.NewHoliday(date, "Jour de Noël"))
	store.Add(events.Event{Start: date.Add(19 * time.Hour), Duration: 180, Title: "Dinner"})

	r, surface, _ := newTestRenderer(t, 2024, store, locale.New("en_GB"))
	if _, err := r.DrawDayPage(2024, 12, 25); err != nil {
		t.Fatalf("DrawDayPage() error = %v", err)
	}

	multi := surface.filter("multicell")
	if len(multi) != 1 {
		t.Fatalf("text blocks = %d, want 1", len(multi))
	}
	block := multi[0]
	if block.text != "Vacances de Noël\nJour de Noël" {
		t.Errorf("text block = %q", block.text)
	}
	if block.x != LeftMargin || block.y != TopMargin {
		t.Errorf("text block at (%v, %v), want (%v, %v)", block.x, block.y, LeftMargin, TopMargin)
	}
	if block.w != dayGridX-8-LeftMargin {
		t.Errorf("text block width = %v, want %v", block.w, dayGridX-8-LeftMargin)
	}
}

func TestDrawDayPage_BindsOnce(t *testing.T) {
	r, _, _ := newTestRenderer(t, 2024, nil, locale.New("en_GB"))

	if _, err := r.DrawDayPage(2024, 3, 1); err != nil {
		t.Fatal(err)
	}
	_, err := r.DrawDayPage(2024, 3, 1)
	if !errors.Is(err, links.ErrAlreadyBound) {
		t.Errorf("second DrawDayPage() error = %v, want ErrAlreadyBound", err)
	}
}

func TestDrawTitleAndYear(t *testing.T) {
	r, surface, registry := newTestRenderer(t, 2024, nil, locale.New("en_GB"))

	if err := r.DrawTitle(2024); err != nil {
		t.Fatalf("DrawTitle() error = %v", err)
	}
	r.DrawYear(2024)

	if surface.page != 1 {
		t.Errorf("pages = %d, want 1", surface.page)
	}
	if got := surface.targets[int(registry.MustResolve("2024"))]; got != 1 {
		t.Errorf("year link targets page %d, want 1", got)
	}

	cells := surface.filter("cell")
	if cells[0].text != "2024" || cells[0].w != PageWidth {
		t.Errorf("title cell = %+v", cells[0])
	}

	// month headers: January top-left, December bottom-right, no year
	var headers []drawOp
	for _, op := range cells {
		for month := 1; month <= 12; month++ {
			if op.link == int(registry.MustResolve(dateutil.MonthKey(2024, month))) {
				headers = append(headers, op)
			}
		}
	}
	if len(headers) != 12 {
		t.Fatalf("month headers = %d, want 12", len(headers))
	}
	if headers[0].text != "January" || headers[0].x != LeftMargin || headers[0].y != yearGridTop {
		t.Errorf("January header = %+v", headers[0])
	}
	last := headers[11]
	if last.x != 2*yearGridPitch+LeftMargin || last.y != 3*yearGridPitch+yearGridTop {
		t.Errorf("December header at (%v, %v)", last.x, last.y)
	}

	total := 0
	for month := 1; month <= 12; month++ {
		total += len(dayCells(t, surface, registry, 2024, month))
	}
	if total != 366 {
		t.Errorf("year overview drew %d days, want 366", total)
	}
	if n := len(surface.filter("multicell")); n != 0 {
		t.Errorf("year overview drew %d text blocks", n)
	}
}

func TestDrawMonthPage(t *testing.T) {
	r, surface, registry := newTestRenderer(t, 2024, nil, locale.New("en_GB"))

	if err := r.DrawMonthPage(2024, 2); err != nil {
		t.Fatalf("DrawMonthPage() error = %v", err)
	}
	if got := surface.targets[int(registry.MustResolve("2024-02"))]; got != 1 {
		t.Errorf("month link targets page %d, want 1", got)
	}

	header := surface.filter("cell")[0]
	if header.text != "February 2024" || header.w != 7*28 {
		t.Errorf("header = %+v", header)
	}
	if header.link != int(registry.MustResolve("2024")) {
		t.Error("month page header should link to the year page")
	}
	if n := len(dayCells(t, surface, registry, 2024, 2)); n != 29 {
		t.Errorf("month page drew %d days, want 29", n)
	}
}

func TestDrawDayPage_LineStyle(t *testing.T) {
	tests := []struct {
		name  string
		color float64
		want  Color
	}{
		{name: "default", color: 200, want: Gray(200)},
		{name: "fractional rounds down", color: 127.4, want: Gray(127)},
		{name: "fractional rounds up", color: 127.5, want: Gray(128)},
		{name: "black", color: 0, want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newRecorder()
			registry := links.NewRegistry(surface)
			if err := registry.Populate(2024); err != nil {
				t.Fatalf("Populate() error = %v", err)
			}
			r := NewRenderer(surface, registry, events.NewStore(), locale.New("en_GB"),
				Style{LineWidth: 0.2, LineColor: tt.color})

			if _, err := r.DrawDayPage(2024, 3, 1); err != nil {
				t.Fatalf("DrawDayPage() error = %v", err)
			}
			for i, line := range surface.filter("line") {
				if line.color != tt.want {
					t.Fatalf("line %d color = %v, want %v", i, line.color, tt.want)
				}
			}
		})
	}
}

func TestGrayLevel(t *testing.T) {
	tests := []struct {
		level float64
		want  Color
	}{
		{0, Black},
		{255, White},
		{99.5, Gray(100)},
		{-3, Black},
		{300, White},
	}
	for _, tt := range tests {
		if got := GrayLevel(tt.level); got != tt.want {
			t.Errorf("GrayLevel(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
