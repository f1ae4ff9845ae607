// Package qrcode renders QR payloads as square PNG images with a configurable
// quiet zone.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	goqrcode "github.com/skip2/go-qrcode"
)

// Options controls the rendered image. Margin is measured in modules.
type Options struct {
	Size       int
	Margin     int
	Level      goqrcode.RecoveryLevel
	Foreground color.Color
	Background color.Color
}

// DefaultOptions renders 300x300 black on white with a 2-module quiet zone.
func DefaultOptions() Options {
	return Options{
		Size:       300,
		Margin:     2,
		Level:      goqrcode.Medium,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Matrix returns the module grid for content without any quiet zone.
func Matrix(content string, level goqrcode.RecoveryLevel) ([][]bool, error) {
	if content == "" {
		return nil, errors.New("qrcode: empty content")
	}
	q, err := goqrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Image scales the module grid of content to opts.Size pixels square.
func Image(content string, opts Options) (image.Image, error) {
	if opts.Size <= 0 || opts.Margin < 0 {
		return nil, fmt.Errorf("qrcode: invalid size %d / margin %d", opts.Size, opts.Margin)
	}
	bitmap, err := Matrix(content, opts.Level)
	if err != nil {
		return nil, err
	}
	modules := len(bitmap)
	total := modules + 2*opts.Margin
	if total > opts.Size {
		return nil, fmt.Errorf("qrcode: %d modules do not fit in %dpx", total, opts.Size)
	}

	img := image.NewPaletted(image.Rect(0, 0, opts.Size, opts.Size), color.Palette{opts.Background, opts.Foreground})
	for y := 0; y < opts.Size; y++ {
		my := y*total/opts.Size - opts.Margin
		if my < 0 || my >= modules {
			continue
		}
		for x := 0; x < opts.Size; x++ {
			mx := x*total/opts.Size - opts.Margin
			if mx >= 0 && mx < modules && bitmap[my][mx] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img, nil
}

// PNG renders content and encodes it as PNG.
func PNG(content string, opts Options) ([]byte, error) {
	img, err := Image(content, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps PNG bytes as a data: URL suitable for an <img> src.
func DataURL(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
