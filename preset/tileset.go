package preset

import (
	"image"

	"golang.org/x/image/draw"
)

// Tiles selects which parts of a TileSet are drawn. Corners are drawn when
// both sides forming them are selected.
type Tiles uint8

const (
	Top Tiles = 1 << iota
	Left
	Bottom
	Right
	Center

	TopLeft     = Top | Left
	TopRight    = Top | Right
	BottomLeft  = Bottom | Left
	BottomRight = Bottom | Right
	Ring        = Top | Left | Bottom | Right
	Horizontal  = Left | Right | Center
	Vertical    = Top | Bottom | Center
	Full        = Ring | Center
)

func (t Tiles) has(flags Tiles) bool {
	return t&flags == flags
}

// sideExtent is the minimum length edge and centre tiles are repeated to,
// so tiled drawing does not issue one copy per pixel.
const sideExtent = 32

// TileSet is a nine-slice split of an image: four corners kept as they are,
// four edges tiled or stretched in one direction and a centre tiled or
// stretched in both.
type TileSet struct {
	tiles   []*image.RGBA
	stretch bool
	w1, h1  int
	w3, h3  int
}

// NewTileSet splits src into nine tiles. The first column is w1 wide, the
// middle one w2 and the last takes the rest; rows likewise with h1 and h2.
// Unless stretch is set, middle tiles are repeated until they span at least
// 32 pixels.
func NewTileSet(src image.Image, w1, h1, w2, h2 int, stretch bool) *TileSet {
	ts := &TileSet{stretch: stretch, w1: w1, h1: h1}
	if src == nil || src.Bounds().Empty() {
		return ts
	}

	b := src.Bounds()
	ts.w3 = b.Dx() - (w1 + w2)
	ts.h3 = b.Dy() - (h1 + h2)

	w, h := w2, h2
	if !stretch {
		for w < sideExtent && w2 > 0 {
			w += w2
		}
		for h < sideExtent && h2 > 0 {
			h += h2
		}
	}

	cols := [3]struct{ x, sw, w int }{{0, w1, w1}, {w1, w2, w}, {w1 + w2, ts.w3, ts.w3}}
	rows := [3]struct{ y, sh, h int }{{0, h1, h1}, {h1, h2, h}, {h1 + h2, ts.h3, ts.h3}}

	ts.tiles = make([]*image.RGBA, 0, 9)
	for _, r := range rows {
		for _, c := range cols {
			rect := image.Rect(c.x, r.y, c.x+c.sw, r.y+r.sh).Add(b.Min)
			ts.tiles = append(ts.tiles, newTile(src, c.w, r.h, rect))
		}
	}
	return ts
}

// newTile copies rect of src into a w×h tile, repeating it when the sizes
// differ. Empty sizes give a nil tile.
func newTile(src image.Image, w, h int, rect image.Rectangle) *image.RGBA {
	if w <= 0 || h <= 0 || rect.Empty() {
		return nil
	}

	part := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(part, part.Bounds(), src, rect.Min, draw.Src)
	if rect.Dx() == w && rect.Dy() == h {
		return part
	}

	tile := image.NewRGBA(image.Rect(0, 0, w, h))
	drawTiled(tile, tile.Bounds(), part, image.Point{}, draw.Src)
	return tile
}

// IsValid reports whether the set was built from a non-empty image.
func (ts *TileSet) IsValid() bool {
	return ts != nil && len(ts.tiles) == 9
}

// Size returns the combined size of the corner tiles.
func (ts *TileSet) Size() image.Point {
	return image.Pt(ts.w1+ts.w3, ts.h1+ts.h3)
}

// Render draws the edges and corners of the set around r.
func (ts *TileSet) Render(dst draw.Image, r image.Rectangle) {
	ts.RenderTiles(dst, r, Ring)
}

// RenderTiles fills r with the selected tiles. Corners are never scaled;
// when r is smaller than the corners they are cropped proportionally on the
// sides opposite to the drawn ones.
func (ts *TileSet) RenderTiles(dst draw.Image, r image.Rectangle, t Tiles) {
	if !ts.IsValid() {
		return
	}

	x0, y0 := r.Min.X, r.Min.Y
	w, h := r.Dx(), r.Dy()

	wLeft, wRight := 0, 0
	if ts.w1+ts.w3 > 0 {
		ratio := float64(ts.w1) / float64(ts.w1+ts.w3)
		wLeft, wRight = ts.w1, ts.w3
		if t&Right != 0 {
			wLeft = min(ts.w1, int(float64(w)*ratio))
		}
		if t&Left != 0 {
			wRight = min(ts.w3, int(float64(w)*(1-ratio)))
		}
	}

	hTop, hBottom := 0, 0
	if ts.h1+ts.h3 > 0 {
		ratio := float64(ts.h1) / float64(ts.h1+ts.h3)
		hTop, hBottom = ts.h1, ts.h3
		if t&Bottom != 0 {
			hTop = min(ts.h1, int(float64(h)*ratio))
		}
		if t&Top != 0 {
			hBottom = min(ts.h3, int(float64(h)*(1-ratio)))
		}
	}

	w -= wLeft + wRight
	h -= hTop + hBottom
	x1 := x0 + wLeft
	x2 := x1 + w
	y1 := y0 + hTop
	y2 := y1 + h

	if t.has(TopLeft) {
		ts.blit(dst, image.Pt(x0, y0), 0, image.Rect(0, 0, wLeft, hTop))
	}
	if t.has(TopRight) {
		ts.blit(dst, image.Pt(x2, y0), 2, image.Rect(ts.w3-wRight, 0, ts.w3, hTop))
	}
	if t.has(BottomLeft) {
		ts.blit(dst, image.Pt(x0, y2), 6, image.Rect(0, ts.h3-hBottom, wLeft, ts.h3))
	}
	if t.has(BottomRight) {
		ts.blit(dst, image.Pt(x2, y2), 8, image.Rect(ts.w3-wRight, ts.h3-hBottom, ts.w3, ts.h3))
	}

	if w > 0 {
		if t&Top != 0 {
			ts.fill(dst, image.Rect(x1, y0, x2, y0+hTop), 1, image.Point{}, false)
		}
		if t&Bottom != 0 {
			ts.fill(dst, image.Rect(x1, y2, x2, y2+hBottom), 7, image.Pt(0, ts.h3-hBottom), false)
		}
	}

	if h > 0 {
		if t&Left != 0 {
			ts.fill(dst, image.Rect(x0, y1, x0+wLeft, y2), 3, image.Point{}, false)
		}
		if t&Right != 0 {
			ts.fill(dst, image.Rect(x2, y1, x2+wRight, y2), 5, image.Pt(ts.w3-wRight, 0), false)
		}
	}

	if t&Center != 0 && w > 0 && h > 0 {
		ts.fill(dst, image.Rect(x1, y1, x2, y2), 4, image.Point{}, true)
	}
}

// blit draws part of tile i unscaled at p.
func (ts *TileSet) blit(dst draw.Image, p image.Point, i int, part image.Rectangle) {
	tile := ts.tiles[i]
	if tile == nil || part.Empty() {
		return
	}
	draw.Draw(dst, image.Rectangle{Min: p, Max: p.Add(part.Size())}, tile, part.Min, draw.Over)
}

// fill covers r with tile i, stretched or repeated from offset off. Edge
// tiles are stretched along their length only; the centre in both
// directions.
func (ts *TileSet) fill(dst draw.Image, r image.Rectangle, i int, off image.Point, both bool) {
	tile := ts.tiles[i]
	if tile == nil || r.Empty() {
		return
	}
	if !ts.stretch {
		drawTiled(dst, r, tile, off, draw.Over)
		return
	}

	src := tile.Bounds()
	if !both {
		// Keep the cropped cross-section of the edge, stretch the rest.
		if i == 1 || i == 7 {
			src = image.Rect(0, off.Y, src.Dx(), off.Y+r.Dy())
		} else {
			src = image.Rect(off.X, 0, off.X+r.Dx(), src.Dy())
		}
	}
	draw.BiLinear.Scale(dst, r, tile, src.Intersect(tile.Bounds()), draw.Over, nil)
}

// drawTiled fills r with copies of tile, starting at tile position off.
func drawTiled(dst draw.Image, r image.Rectangle, tile image.Image, off image.Point, op draw.Op) {
	tb := tile.Bounds()
	tw, th := tb.Dx(), tb.Dy()
	if tw <= 0 || th <= 0 {
		return
	}

	ty := mod(off.Y, th)
	for y := r.Min.Y; y < r.Max.Y; {
		hh := min(th-ty, r.Max.Y-y)
		tx := mod(off.X, tw)
		for x := r.Min.X; x < r.Max.X; {
			ww := min(tw-tx, r.Max.X-x)
			draw.Draw(dst, image.Rect(x, y, x+ww, y+hh), tile, tb.Min.Add(image.Pt(tx, ty)), op)
			x += ww
			tx = 0
		}
		y += hh
		ty = 0
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
