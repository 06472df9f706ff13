package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestPDFCanvasEncodesCP1252(t *testing.T) {
	c := NewPDFCanvas("t")
	c.pdf.SetCompression(false)
	c.DrawString(50, 700, "Continuación")
	c.DrawString(50, 680, "Łódź")
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := c.Bytes()
	if !bytes.Contains(out, []byte("(Continuaci\xf3n)")) {
		t.Error("cp1252 text not encoded as single bytes")
	}
	if !bytes.Contains(out, []byte("(.\xf3d.)")) {
		t.Error("runes outside cp1252 should be replaced with '.'")
	}
}

func TestWriteXLSXColumnWidths(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, Selection{Title: "T", Subtitle: "S", Lang: "en"}); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	for _, cw := range xlsxWidths {
		got, err := f.GetColWidth("Assets", cw.to)
		if err != nil {
			t.Fatal(err)
		}
		if got != cw.width {
			t.Errorf("column %s width = %v, want %v", cw.to, got, cw.width)
		}
	}
}
