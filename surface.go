package boxshadow

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/boxshadow/internal/blend"
	"github.com/gogpu/boxshadow/internal/blur"
)

// PixelSize is the number of bytes per surface pixel.
const PixelSize = 4

// alphaChannel is the byte offset of alpha within a pixel.
const alphaChannel = 3

// Surface is an owned buffer of premultiplied RGBA pixels.
//
// Rows are Stride bytes apart; Stride may exceed Width*PixelSize. The byte
// order is R, G, B, A, the layout of image.RGBA.
type Surface struct {
	width  int
	height int
	stride int
	data   []uint8
}

// NewSurface creates a transparent surface with a packed stride.
func NewSurface(width, height int) *Surface {
	return NewSurfaceWithStride(width, height, width*PixelSize)
}

// NewSurfaceWithStride creates a transparent surface whose rows are stride
// bytes apart. A stride smaller than width*PixelSize is raised to it.
func NewSurfaceWithStride(width, height, stride int) *Surface {
	assertf(width >= 0 && height >= 0, "negative surface size %dx%d", width, height)
	width = max(width, 0)
	height = max(height, 0)
	stride = max(stride, width*PixelSize)

	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]uint8, stride*height),
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the surface dimensions.
func (s *Surface) Size() image.Point {
	return image.Pt(s.width, s.height)
}

// Stride returns the number of bytes between rows.
func (s *Surface) Stride() int {
	return s.stride
}

// Data returns the raw pixel data.
func (s *Surface) Data() []uint8 {
	return s.data
}

// Row returns the pixels of row y without the stride padding.
func (s *Surface) Row(y int) []uint8 {
	i := y * s.stride
	return s.data[i : i+s.width*PixelSize]
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return y*s.stride + x*PixelSize
}

// Pixel returns the premultiplied color at (x, y).
// Coordinates outside the surface return transparent.
func (s *Surface) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := s.PixOffset(x, y)
	return color.RGBA{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// AlphaAt returns the alpha of the pixel at (x, y).
func (s *Surface) AlphaAt(x, y int) uint8 {
	return s.Pixel(x, y).A
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	r, g, b, a := c.Premultiplied()
	for y := 0; y < s.height; y++ {
		blend.Uniform(blend.Source, s.Row(y), r, g, b, a)
	}
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.data)
}

// Composite blends the whole of src onto s with its top-left corner at
// at. Pixels falling outside s are dropped.
func (s *Surface) Composite(at image.Point, src *Surface, mode blend.Mode) {
	r := src.Bounds().Add(at).Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	n := r.Dx() * PixelSize
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := s.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X-at.X, y-at.Y)
		blend.Span(mode, s.data[di:di+n], src.data[si:si+n])
	}
}

// FillMasked blends c onto s scaled by the coverage of m. m must have the
// surface bounds.
func (s *Surface) FillMasked(m *image.Alpha, c Color, mode blend.Mode) {
	r, g, b, a := c.Premultiplied()
	h := min(s.height, m.Rect.Dy())
	w := min(s.width, m.Rect.Dx())
	for y := 0; y < h; y++ {
		blend.Masked(mode, s.Row(y)[:w*PixelSize], m.Pix[y*m.Stride:y*m.Stride+w], r, g, b, a)
	}
}

// alphaPlane addresses the alpha samples of the surface.
func (s *Surface) alphaPlane() blur.Plane {
	return blur.Plane{
		Pix:       s.data,
		Width:     s.width,
		Height:    s.height,
		Stride:    s.stride,
		PixelSize: PixelSize,
		Channel:   alphaChannel,
	}
}

// RGBA returns an *image.RGBA sharing the surface memory.
func (s *Surface) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("boxshadow: create file: %w", err)
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG writes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.RGBA()); err != nil {
		return fmt.Errorf("boxshadow: encode png: %w", err)
	}
	return nil
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}
