package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/phpdave11/gofpdf"
)

// PDF download metadata.
const (
	PDFFilename    = "reporte_mantenimiento.pdf"
	PDFContentType = "application/pdf"
)

// PDFCanvas is a Canvas backed by gofpdf that buffers the document in memory.
// gofpdf measures y from the top of the page; coordinates are flipped here.
//
// Text uses the core Helvetica fonts, so strings are encoded as cp1252.
// Runes outside that code page (for example "Ł" or "ź") are written as ".".
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	out    bytes.Buffer
	images int
}

// NewPDFCanvas starts a letter-size document with its first page open.
func NewPDFCanvas(title string) *PDFCanvas {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("go-assets", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	return &PDFCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (c *PDFCanvas) SetFont(face FontFace, size float64) {
	style := ""
	switch face {
	case Bold:
		style = "B"
	case Italic:
		style = "I"
	}
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *PDFCanvas) SetFillColor(col Color) {
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) SetStrokeColor(col Color) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) DrawString(x, y float64, s string) {
	c.pdf.Text(x, PageHeight-y, c.tr(s))
}

func (c *PDFCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, PageHeight-y1, x2, PageHeight-y2)
}

func (c *PDFCanvas) DrawImage(img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	c.images++
	name := fmt.Sprintf("img%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, &buf)
	c.pdf.ImageOptions(name, x, PageHeight-y-h, w, h, false, opts, 0, "")
	return c.pdf.Error()
}

func (c *PDFCanvas) ShowPage() { c.pdf.AddPage() }

// Save finalizes the document into the internal buffer.
func (c *PDFCanvas) Save() error {
	if err := c.pdf.Output(&c.out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Bytes returns the finished document. It is empty before Save.
func (c *PDFCanvas) Bytes() []byte { return c.out.Bytes() }

// PageCount returns the number of pages started so far.
func (c *PDFCanvas) PageCount() int { return c.pdf.PageCount() }
