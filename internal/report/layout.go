package report

import (
	"context"
	"fmt"
	"image"

	"github.com/diewo77/go-assets/i18n"
	"github.com/diewo77/go-assets/internal/models"
	"github.com/diewo77/go-assets/internal/qr"
)

// Layout constants, in layout units from the bottom of the page.
const (
	MarginLeft  = 50.0
	MarginRight = 550.0

	TitleY        = 750.0
	SubtitleY     = 735.0
	FirstRuleY    = 725.0
	ContinuationY = 750.0
	ContRuleY     = 740.0

	FirstPageCursor    = 660.0
	ContinuationCursor = 700.0
	BreakThreshold     = 100.0
	RowHeight          = 80.0

	QRSize  = 50.0
	TextX   = 120.0
	StatusX = 450.0
)

// Stats describes a finished render.
type Stats struct {
	Pages int
	Rows  int
}

// Engine lays out a Selection onto a Canvas. An Engine holds no per-render
// state and may be shared between requests.
type Engine struct {
	// Encode turns a QR payload into an image. Defaults to qr.Encode.
	Encode func(payload string) (image.Image, error)
}

func NewEngine() *Engine { return &Engine{Encode: qr.Encode} }

// page tracks the cursor of one render.
type page struct {
	c      Canvas
	lang   string
	title  string
	cursor float64
	stats  Stats
}

// Render draws the header, one block per record and finalizes the canvas.
// Records are never split across pages: the break check runs before each
// record is drawn. Any error aborts the render before Save.
func (e *Engine) Render(ctx context.Context, sel Selection, c Canvas) (Stats, error) {
	encode := e.Encode
	if encode == nil {
		encode = qr.Encode
	}
	p := &page{c: c, lang: sel.Lang, title: sel.Title, cursor: FirstPageCursor, stats: Stats{Pages: 1}}
	p.firstHeader(sel.Subtitle)

	for i := range sel.Records {
		if err := ctx.Err(); err != nil {
			return p.stats, err
		}
		rec := &sel.Records[i]
		if p.cursor < BreakThreshold {
			p.newPage()
		}
		img, err := encode(rec.QRPayload())
		if err != nil {
			return p.stats, fmt.Errorf("equipment %d: %w", rec.ID, err)
		}
		if err := p.row(rec, img); err != nil {
			return p.stats, fmt.Errorf("equipment %d: %w", rec.ID, err)
		}
	}
	if err := c.Save(); err != nil {
		return p.stats, fmt.Errorf("finalize document: %w", err)
	}
	return p.stats, nil
}

func (p *page) firstHeader(subtitle string) {
	p.c.SetFillColor(Black)
	p.c.SetFont(Bold, 18)
	p.c.DrawString(MarginLeft, TitleY, p.title)
	p.c.SetFont(Regular, 12)
	p.c.DrawString(MarginLeft, SubtitleY, subtitle)
	p.c.SetStrokeColor(Black)
	p.c.DrawLine(MarginLeft, FirstRuleY, MarginRight, FirstRuleY)
}

func (p *page) newPage() {
	p.c.ShowPage()
	p.stats.Pages++
	p.c.SetFillColor(Black)
	p.c.SetFont(Bold, 10)
	p.c.DrawString(MarginLeft, ContinuationY, i18n.Tf(p.lang, "report.continuation", p.title))
	p.c.SetStrokeColor(Black)
	p.c.DrawLine(MarginLeft, ContRuleY, MarginRight, ContRuleY)
	p.cursor = ContinuationCursor
}

func (p *page) row(rec *models.EquipmentWithOwner, img image.Image) error {
	y := p.cursor
	if err := p.c.DrawImage(img, MarginLeft, y, QRSize, QRSize); err != nil {
		return err
	}

	p.c.SetFont(Bold, 12)
	p.c.DrawString(TextX, y+35, rec.Name)

	p.c.SetFont(Regular, 10)
	p.c.DrawString(TextX, y+20, i18n.Tf(p.lang, "report.category_serial", rec.Category, rec.SerialOrEmpty()))
	p.c.DrawString(TextX, y+5, i18n.Tf(p.lang, "report.location", rec.Location))

	p.c.SetFont(Italic, 9)
	p.c.SetFillColor(Gray)
	p.c.DrawString(TextX, y-8, i18n.Tf(p.lang, "report.notes", rec.NotesOrEmpty()))
	p.c.SetFillColor(Black)

	p.c.SetFillColor(StatusColor(rec.Status))
	p.c.SetFont(Bold, 10)
	p.c.DrawString(StatusX, y+35, rec.Status)
	p.c.SetFillColor(Black)

	p.c.SetStrokeColor(LightGray)
	p.c.DrawLine(MarginLeft, y-15, MarginRight, y-15)

	p.cursor -= RowHeight
	p.stats.Rows++
	return nil
}

// StatusColor is red for "Failure" and green for every other status.
func StatusColor(status string) Color {
	if status == models.StatusFailure {
		return Red
	}
	return Green
}
