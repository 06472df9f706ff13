// Package qr rasterizes short text payloads into QR-code images.
package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	bqr "github.com/boombuler/barcode/qr"
)

// ErrEncoding wraps any failure to turn a payload into a QR image.
var ErrEncoding = errors.New("qr encoding failed")

const (
	// ModuleSize is the edge length of one QR module in pixels.
	ModuleSize = 5
	// Border is the quiet zone width in modules.
	Border = 1
)

// Encode returns a square black-on-white image of payload. The QR version is
// chosen automatically; error correction is fixed at level M.
func Encode(payload string) (image.Image, error) {
	code, err := bqr.Encode(payload, bqr.M, bqr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	modules := code.Bounds().Dx()
	side := (modules + 2*Border) * ModuleSize
	img := image.NewGray(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	origin := code.Bounds().Min
	for my := 0; my < modules; my++ {
		for mx := 0; mx < modules; mx++ {
			if !isDark(code.At(origin.X+mx, origin.Y+my)) {
				continue
			}
			x0 := (mx + Border) * ModuleSize
			y0 := (my + Border) * ModuleSize
			for y := y0; y < y0+ModuleSize; y++ {
				for x := x0; x < x0+ModuleSize; x++ {
					img.SetGray(x, y, color.Gray{Y: 0})
				}
			}
		}
	}
	return img, nil
}

// EncodePNG is Encode followed by PNG serialization.
func EncodePNG(payload string) ([]byte, error) {
	img, err := Encode(payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

func isDark(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y < 0x80
}
