// Package pdf implements the layout drawing surface on top of fpdf.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/username/agenda/internal/layout"
	"go.uber.org/zap"
)

const (
	fontFamily   = "dejavu"
	regularFont  = "DejaVuSansCondensed.ttf"
	boldFont     = "DejaVuSansCondensed-Bold.ttf"
	fallbackFont = "Helvetica"
)

// Options describes the document being produced
type Options struct {
	Title    string
	Author   string
	Creator  string
	FontsDir string // directory with the DejaVu Sans Condensed TTF files, empty for core fonts
}

// Document is a PDF being drawn page by page
type Document struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
	logger    *zap.Logger
}

// New creates an empty document sized for the planner pages
func New(opts Options, logger *zap.Logger) (*Document, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
		FontDirStr:     opts.FontsDir,
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(opts.Title, true)
	doc.SetAuthor(opts.Author, true)
	doc.SetCreator(opts.Creator, true)

	d := &Document{
		pdf:       doc,
		family:    fontFamily,
		translate: func(s string) string { return s },
		logger:    logger,
	}

	if opts.FontsDir == "" {
		logger.Debug("No fonts directory, using core font", zap.String("font", fallbackFont))
		d.family = fallbackFont
		d.translate = doc.UnicodeTranslatorFromDescriptor("")
		return d, nil
	}

	for _, name := range []string{regularFont, boldFont} {
		if _, err := os.Stat(filepath.Join(opts.FontsDir, name)); err != nil {
			return nil, fmt.Errorf("font %s not found: %w", name, err)
		}
	}

	doc.AddUTF8Font(fontFamily, "", regularFont)
	doc.AddUTF8Font(fontFamily, "B", boldFont)
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("failed to load fonts from %s: %w", opts.FontsDir, err)
	}

	logger.Debug("Loaded UTF-8 fonts", zap.String("dir", opts.FontsDir))
	return d, nil
}

// Err returns the first error fpdf recorded, if any
func (d *Document) Err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Output writes the document to path and closes it
func (d *Document) Output(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write writes the document to w and closes it
func (d *Document) Write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (d *Document) AddPage() {
	d.pdf.AddPage()
}

func (d *Document) AddLink() int {
	return d.pdf.AddLink()
}

func (d *Document) SetLink(link int) {
	d.pdf.SetLink(link, 0, -1)
}

func (d *Document) SetXY(x, y float64) {
	d.pdf.SetXY(x, y)
}

func (d *Document) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont(d.family, style, size)
}

func (d *Document) SetTextColor(c layout.Color) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

func (d *Document) SetFillColor(c layout.Color) {
	d.pdf.SetFillColor(c.R, c.G, c.B)
}

func (d *Document) SetDrawColor(c layout.Color) {
	d.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (d *Document) SetLineWidth(width float64) {
	d.pdf.SetLineWidth(width)
}

func (d *Document) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	d.pdf.Rect(x, y, w, h, style)
}

func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *Document) Cell(w, h float64, text string, align layout.Align, fill bool, link int) {
	d.pdf.CellFormat(w, h, d.translate(text), "", 0, string(align), fill, link, "")
}

func (d *Document) MultiCell(w, h float64, text string, align layout.Align) {
	d.pdf.MultiCell(w, h, d.translate(text), "", string(align), false)
}

var _ layout.Surface = (*Document)(nil)
