package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	labelSize    = 12
	labelPadding = 4
)

var labelColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// drawLabel returns a copy of img on a white background with text centered
// in a band below it.
func drawLabel(img image.Image, text string) (*image.RGBA, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	m := face.Metrics()
	band := (m.Ascent + m.Descent).Ceil() + 2*labelPadding

	b := img.Bounds()
	advance := font.MeasureString(face, text).Ceil()
	w := max(b.Dx(), advance+2*labelPadding)
	dst := image.NewRGBA(image.Rect(0, 0, w, b.Dy()+band))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	at := image.Pt((w-b.Dx())/2, 0)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((w - advance) / 2),
			Y: fixed.I(b.Dy()+labelPadding) + m.Ascent,
		},
	}
	d.DrawString(text)
	return dst, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("shadowgen: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("shadowgen: encode %s: %w", path, err)
	}
	return f.Close()
}
