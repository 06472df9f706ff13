package qr

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodeGeometry(t *testing.T) {
	img, err := Encode("ID:42\nSN:ABC-99")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Fatalf("image not square: %v", b)
	}
	if b.Dx()%ModuleSize != 0 {
		t.Fatalf("side %d is not a multiple of module size", b.Dx())
	}
	modules := b.Dx()/ModuleSize - 2*Border
	// QR versions have 21, 25, 29, ... modules per side.
	if modules < 21 || (modules-21)%4 != 0 {
		t.Fatalf("unexpected module count %d", modules)
	}
	// Border is white, first finder pattern module is black.
	if isDark(img.At(0, 0)) {
		t.Errorf("border pixel should be white")
	}
	if !isDark(img.At(Border*ModuleSize, Border*ModuleSize)) {
		t.Errorf("finder pattern corner should be black")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("ID:42\nSN:ABC-99")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode("ID:42\nSN:ABC-99")
	if err != nil {
		t.Fatal(err)
	}
	if !samePixels(a, b) {
		t.Fatal("re-encoding the same payload produced different modules")
	}
	c, err := Encode("ID:43\nSN:ABC-99")
	if err != nil {
		t.Fatal(err)
	}
	if samePixels(a, c) {
		t.Fatal("different payloads produced identical images")
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG("ID:1\nSN:")
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() == 0 {
		t.Fatal("empty png")
	}
}

func samePixels(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if isDark(a.At(x, y)) != isDark(b.At(x, y)) {
				return false
			}
		}
	}
	return true
}
