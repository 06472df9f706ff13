package report

import "image"

// Page geometry in layout units (points) of a US letter page.
// Coordinates passed to a Canvas have their origin at the bottom-left corner.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// FontFace selects the weight/slant of the report font.
type FontFace int

const (
	Regular FontFace = iota
	Bold
	Italic
)

func (f FontFace) String() string {
	switch f {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "regular"
	}
}

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	Gray      = Color{128, 128, 128}
	LightGray = Color{211, 211, 211}
	Red       = Color{255, 0, 0}
	Green     = Color{0, 128, 0}
)

// Canvas receives positioned draw calls and accumulates them into a
// multi-page document. Save finalizes the document; nothing may be drawn
// afterwards.
type Canvas interface {
	SetFont(face FontFace, size float64)
	// SetFillColor sets the text color.
	SetFillColor(c Color)
	// SetStrokeColor sets the line color.
	SetStrokeColor(c Color)
	DrawString(x, y float64, s string)
	DrawLine(x1, y1, x2, y2 float64)
	// DrawImage places img with its bottom-left corner at (x, y), scaled to w×h.
	DrawImage(img image.Image, x, y, w, h float64) error
	// ShowPage ends the current page and starts a new one.
	ShowPage()
	Save() error
}
