package report

import (
	"errors"
	"image"
)

// op is one recorded draw call.
type op struct {
	Kind   string // "text", "line", "image", "page", "save"
	Page   int
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	Text   string
	Face   FontFace
	Size   float64
	Fill   Color
	Stroke Color
}

// recorder is a Canvas that keeps every call for inspection.
type recorder struct {
	ops     []op
	page    int
	face    FontFace
	size    float64
	fill    Color
	stroke  Color
	saved   bool
	failImg bool
}

func newRecorder() *recorder { return &recorder{page: 1} }

func (r *recorder) SetFont(face FontFace, size float64) { r.face, r.size = face, size }
func (r *recorder) SetFillColor(c Color)                { r.fill = c }
func (r *recorder) SetStrokeColor(c Color)              { r.stroke = c }

func (r *recorder) DrawString(x, y float64, s string) {
	r.ops = append(r.ops, op{Kind: "text", Page: r.page, X: x, Y: y, Text: s, Face: r.face, Size: r.size, Fill: r.fill})
}

func (r *recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, op{Kind: "line", Page: r.page, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: r.stroke})
}

func (r *recorder) DrawImage(_ image.Image, x, y, w, h float64) error {
	if r.failImg {
		return errors.New("image sink broken")
	}
	r.ops = append(r.ops, op{Kind: "image", Page: r.page, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *recorder) ShowPage() {
	r.ops = append(r.ops, op{Kind: "page", Page: r.page})
	r.page++
}

func (r *recorder) Save() error {
	r.saved = true
	r.ops = append(r.ops, op{Kind: "save", Page: r.page})
	return nil
}

func (r *recorder) texts(page int) []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind == "text" && o.Page == page {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) findText(s string) []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind == "text" && o.Text == s {
			out = append(out, o)
		}
	}
	return out
}
