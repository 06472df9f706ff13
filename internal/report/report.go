// Package report builds the maintenance report: it selects the equipment to
// show, lays it out page by page with one QR code per asset and renders the
// result as PDF (or as a spreadsheet).
package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/diewo77/go-assets/i18n"
)

// Document is a finished report.
type Document struct {
	Data      []byte
	Selection Selection
	Stats     Stats
}

// Generator ties the selector, the layout engine and the PDF sink together.
type Generator struct {
	Selector *Selector
	Engine   *Engine
}

func NewGenerator(sel *Selector, eng *Engine) *Generator {
	return &Generator{Selector: sel, Engine: eng}
}

// PDF resolves the selection for clientID (nil for all clients) and renders it.
func (g *Generator) PDF(ctx context.Context, clientID *uint, lang string) (*Document, error) {
	sel, err := g.Selector.Resolve(ctx, clientID, lang)
	if err != nil {
		return nil, err
	}
	canvas := NewPDFCanvas(i18n.T(sel.Lang, "report.doc_title"))
	stats, err := g.Engine.Render(ctx, sel, canvas)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return &Document{Data: canvas.Bytes(), Selection: sel, Stats: stats}, nil
}

// XLSX resolves the selection for clientID and writes it as a workbook.
func (g *Generator) XLSX(ctx context.Context, clientID *uint, lang string) (*Document, error) {
	sel, err := g.Selector.Resolve(ctx, clientID, lang)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sel); err != nil {
		return nil, err
	}
	return &Document{Data: buf.Bytes(), Selection: sel, Stats: Stats{Pages: 1, Rows: len(sel.Records)}}, nil
}
