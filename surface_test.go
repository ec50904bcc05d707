package boxshadow

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/boxshadow/internal/blend"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("size = %dx%d, want 10x5", s.Width(), s.Height())
	}
	if s.Stride() != 40 {
		t.Errorf("Stride() = %d, want 40", s.Stride())
	}
	if len(s.Data()) != 200 {
		t.Errorf("len(Data()) = %d, want 200", len(s.Data()))
	}
	for _, b := range s.Data() {
		if b != 0 {
			t.Fatal("new surface is not transparent")
		}
	}
}

func TestNewSurfaceWithStride(t *testing.T) {
	s := NewSurfaceWithStride(3, 2, 16)
	if s.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", s.Stride())
	}
	if len(s.Row(1)) != 12 {
		t.Errorf("len(Row(1)) = %d, want 12", len(s.Row(1)))
	}

	// Too small a stride is raised to the packed width.
	if got := NewSurfaceWithStride(3, 2, 4).Stride(); got != 12 {
		t.Errorf("small stride = %d, want 12", got)
	}
}

func TestSurfaceFill(t *testing.T) {
	s := NewSurfaceWithStride(4, 3, 20)
	s.Fill(Color{255, 0, 0, 128})

	want := color.RGBA{128, 0, 0, 128}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := s.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
		// Stride padding is never written.
		for _, b := range s.Data()[y*20+16 : y*20+20] {
			if b != 0 {
				t.Fatalf("row %d padding written", y)
			}
		}
	}

	s.Clear()
	if got := s.Pixel(1, 1); got != (color.RGBA{}) {
		t.Errorf("after Clear Pixel = %v, want transparent", got)
	}
}

func TestSurfaceComposite(t *testing.T) {
	dst := NewSurface(4, 4)
	dst.Fill(Color{0, 0, 255, 255})

	src := NewSurface(2, 2)
	src.Fill(Color{255, 0, 0, 255})

	tests := []struct {
		name string
		at   image.Point
		red  []image.Point
	}{
		{"inside", image.Pt(1, 1), []image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
		{"clipped top-left", image.Pt(-1, -1), []image.Point{{0, 0}}},
		{"clipped bottom-right", image.Pt(3, 3), []image.Point{{3, 3}}},
		{"outside", image.Pt(9, 9), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSurface(4, 4)
			copy(d.Data(), dst.Data())
			d.Composite(tt.at, src, blend.SourceOver)

			red := map[image.Point]bool{}
			for _, p := range tt.red {
				red[p] = true
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					got := d.Pixel(x, y)
					isRed := got.R == 255 && got.B == 0
					if isRed != red[image.Pt(x, y)] {
						t.Errorf("Pixel(%d,%d) = %v, red = %v", x, y, got, red[image.Pt(x, y)])
					}
				}
			}
		})
	}
}

func TestSurfaceFillMasked(t *testing.T) {
	s := NewSurface(3, 1)
	m := image.NewAlpha(image.Rect(0, 0, 3, 1))
	m.Pix = []byte{0, 128, 255}

	s.FillMasked(m, Black, blend.SourceOver)

	for x, want := range []uint8{0, 128, 255} {
		if got := s.AlphaAt(x, 0); got != want {
			t.Errorf("AlphaAt(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestSurfaceImageInterop(t *testing.T) {
	s := NewSurface(2, 2)
	s.Fill(Color{0, 255, 0, 255})

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
	if got := s.Pixel(5, 5); got != (color.RGBA{}) {
		t.Errorf("out of bounds Pixel = %v, want transparent", got)
	}

	// The RGBA view shares memory.
	s.RGBA().SetRGBA(1, 1, color.RGBA{1, 2, 3, 4})
	if got := s.Pixel(1, 1); got != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("Pixel after view write = %v", got)
	}
}

func TestSurfacePNG(t *testing.T) {
	s := NewSurface(3, 2)
	s.Fill(Color{255, 0, 0, 255})

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("decoded pixel = (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func TestImageIsNull(t *testing.T) {
	var nilImage *Image
	if !nilImage.IsNull() {
		t.Error("nil image should be null")
	}
	if !(&Image{}).IsNull() {
		t.Error("image without surface should be null")
	}
	if !(&Image{Surface: NewSurface(0, 3), DevicePixelRatio: 1}).IsNull() {
		t.Error("zero-width image should be null")
	}

	im := &Image{Surface: NewSurface(20, 10), DevicePixelRatio: 2}
	if im.IsNull() {
		t.Error("20x10 image should not be null")
	}
	if got := im.LogicalSize(); got != image.Pt(10, 5) {
		t.Errorf("LogicalSize() = %v, want (10,5)", got)
	}
}
