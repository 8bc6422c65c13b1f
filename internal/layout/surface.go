package layout

import "math"

// Page geometry in millimeters. The size is close to A4 but matches the
// reMarkable 2 screen; margins clear its toolbar.
const (
	PageWidth    = 210.0
	PageHeight   = 280.0
	LeftMargin   = 10.0
	RightMargin  = 20.0
	TopMargin    = 20.0
	BottomMargin = 20.0
)

// Align is the horizontal alignment of text in a cell
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB color with 0-255 components
type Color struct {
	R, G, B int
}

// Gray returns the gray level v (0 = black, 255 = white)
func Gray(v int) Color {
	return Color{v, v, v}
}

// GrayLevel returns the gray closest to level, clamped to 0-255
func GrayLevel(level float64) Color {
	return Gray(int(math.Round(math.Max(0, math.Min(255, level)))))
}

var (
	White = Gray(255)
	Black = Gray(0)
)

// NoLink is passed to Cell when the text is not clickable
const NoLink = 0

// Surface is the drawing backend the layout renders onto.
// Coordinates are in millimeters from the top-left corner of the current page.
type Surface interface {
	AddPage()
	// AddLink creates an internal link that can be targeted later
	AddLink() int
	// SetLink makes the current page the target of link
	SetLink(link int)

	SetXY(x, y float64)
	SetFont(bold bool, size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(width float64)

	// Rect draws a filled rectangle if fill is set, its outline otherwise
	Rect(x, y, w, h float64, fill bool)
	Line(x1, y1, x2, y2 float64)
	// Cell prints a single line of text at the current position
	Cell(w, h float64, text string, align Align, fill bool, link int)
	// MultiCell prints text wrapped to width w, one line every h
	MultiCell(w, h float64, text string, align Align)
}
