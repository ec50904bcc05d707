package preset

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

// gradientImage returns a w×h opaque image whose pixels encode their
// coordinates.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestNewTileSetInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  image.Image
	}{
		{"nil", nil},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTileSet(tt.src, 2, 2, 1, 1, false)
			if ts.IsValid() {
				t.Error("IsValid() = true")
			}
			// Rendering an invalid set is a no-op.
			dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
			ts.Render(dst, dst.Bounds())
		})
	}

	var nilSet *TileSet
	if nilSet.IsValid() {
		t.Error("nil tile set is valid")
	}
}

func TestTileSetTileSizes(t *testing.T) {
	ts := NewTileSet(gradientImage(20, 16), 8, 6, 2, 3, false)
	if !ts.IsValid() {
		t.Fatal("IsValid() = false")
	}
	if got := ts.Size(); got != image.Pt(18, 13) {
		t.Errorf("Size() = %v, want (18,13)", got)
	}

	// Middle tiles are repeated to at least 32 px.
	if got := ts.tiles[4].Bounds().Size(); got != image.Pt(32, 33) {
		t.Errorf("center tile size = %v, want (32,33)", got)
	}
	if got := ts.tiles[1].Bounds().Size(); got != image.Pt(32, 6) {
		t.Errorf("top tile size = %v, want (32,6)", got)
	}
	if got := ts.tiles[8].Bounds().Size(); got != image.Pt(10, 7) {
		t.Errorf("corner tile size = %v, want (10,7)", got)
	}

	// Repeated tiles wrap the source strip.
	if got, want := ts.tiles[1].RGBAAt(2, 0), (color.RGBA{R: 8, G: 0, B: 7, A: 255}); got != want {
		t.Errorf("top tile (2,0) = %v, want %v", got, want)
	}

	stretched := NewTileSet(gradientImage(20, 16), 8, 6, 2, 3, true)
	if got := stretched.tiles[4].Bounds().Size(); got != image.Pt(2, 3) {
		t.Errorf("stretched center tile size = %v, want (2,3)", got)
	}
}

func TestTileSetReconstructs(t *testing.T) {
	src := gradientImage(21, 17)
	ts := NewTileSet(src, 10, 8, 1, 1, false)

	dst := image.NewRGBA(src.Bounds())
	ts.RenderTiles(dst, dst.Bounds(), Full)

	for y := 0; y < 17; y++ {
		for x := 0; x < 21; x++ {
			if dst.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, dst.RGBAAt(x, y), src.RGBAAt(x, y))
			}
		}
	}
}

func TestTileSetRenderLarger(t *testing.T) {
	src := gradientImage(21, 17)
	ts := NewTileSet(src, 10, 8, 1, 1, false)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 60))
	r := image.Rect(5, 5, 95, 55)
	ts.Render(dst, r)

	// Corners are copied unscaled.
	if got, want := dst.RGBAAt(5, 5), src.RGBAAt(0, 0); got != want {
		t.Errorf("top-left = %v, want %v", got, want)
	}
	if got, want := dst.RGBAAt(94, 54), src.RGBAAt(20, 16); got != want {
		t.Errorf("bottom-right = %v, want %v", got, want)
	}

	// Edges repeat the middle column and row.
	if got, want := dst.RGBAAt(50, 5), src.RGBAAt(10, 0); got != want {
		t.Errorf("top edge = %v, want %v", got, want)
	}
	if got, want := dst.RGBAAt(94, 30), src.RGBAAt(20, 8); got != want {
		t.Errorf("right edge = %v, want %v", got, want)
	}

	// Ring leaves the center and everything outside r untouched.
	if got := dst.RGBAAt(50, 30); got != (color.RGBA{}) {
		t.Errorf("center = %v, want transparent", got)
	}
	if got := dst.RGBAAt(2, 2); got != (color.RGBA{}) {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestTileSetRenderSmaller(t *testing.T) {
	src := gradientImage(21, 17)
	ts := NewTileSet(src, 10, 8, 1, 1, false)

	// A rect narrower than the corners crops them proportionally.
	dst := image.NewRGBA(image.Rect(0, 0, 10, 8))
	ts.Render(dst, dst.Bounds())

	if got, want := dst.RGBAAt(0, 0), src.RGBAAt(0, 0); got != want {
		t.Errorf("top-left = %v, want %v", got, want)
	}
	if got, want := dst.RGBAAt(9, 7), src.RGBAAt(20, 16); got != want {
		t.Errorf("bottom-right = %v, want %v", got, want)
	}
}

func TestTileSetStretch(t *testing.T) {
	src := gradientImage(21, 17)
	ts := NewTileSet(src, 10, 8, 1, 1, true)

	dst := image.NewRGBA(image.Rect(0, 0, 60, 40))
	ts.RenderTiles(dst, dst.Bounds(), Full)

	// A one pixel strip stretched stays uniform.
	want := src.RGBAAt(10, 8)
	for _, p := range []image.Point{{20, 20}, {30, 15}, {45, 30}} {
		if got := dst.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("center %v = %v, want %v", p, got, want)
		}
	}
}

func TestDrawTiledOffset(t *testing.T) {
	tile := gradientImage(3, 2)
	dst := image.NewRGBA(image.Rect(0, 0, 7, 5))
	drawTiled(dst, dst.Bounds(), tile, image.Pt(1, -1), draw.Src)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := tile.RGBAAt(mod(x+1, 3), mod(y-1, 2))
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
