// Package mask rasterizes anti-aliased rounded rectangle coverage masks.
//
// Masks are produced with golang.org/x/image/vector, whose signed-area
// accumulation lets a reversed inner contour cut a hole in an outer one.
package mask

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so a Bézier quarter approximates an
// ellipse arc. See https://pomax.github.io/bezierinfo/#circles_cubic
var kappa = float32(4 * (math.Sqrt2 - 1) / 3)

// Rect is a rectangle in floating-point raster coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Dx returns the rectangle width.
func (r Rect) Dx() float64 { return r.X1 - r.X0 }

// Dy returns the rectangle height.
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }

// Inset shrinks the rectangle by d on every side; negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// Scale multiplies every coordinate by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{X0: r.X0 * s, Y0: r.Y0 * s, X1: r.X1 * s, Y1: r.Y1 * s}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// FromRectangle converts an integer rectangle.
func FromRectangle(r image.Rectangle) Rect {
	return Rect{X0: float64(r.Min.X), Y0: float64(r.Min.Y), X1: float64(r.Max.X), Y1: float64(r.Max.Y)}
}

// RoundedRect returns the coverage of r with corner radii rx, ry on a w×h
// mask. Radii are clamped to half the rectangle size, so thin rectangles get
// elliptical corners.
func RoundedRect(w, h int, r Rect, rx, ry float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || r.Empty() {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	addRoundedRect(z, r, rx, ry, false)
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Ring returns the coverage between an outer and an inner rounded rectangle.
// An empty inner rectangle yields the filled outer one.
func Ring(w, h int, outer Rect, orx, ory float64, inner Rect, irx, iry float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || outer.Empty() {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	addRoundedRect(z, outer, orx, ory, false)
	if !inner.Empty() {
		addRoundedRect(z, inner, irx, iry, true)
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Outline returns a one-unit-wide anti-aliased ring centered on the edge of
// r, scaled by s, the way a cosmetic 1 px pen strokes a rounded rectangle.
func Outline(w, h int, r Rect, radius, s float64) *image.Alpha {
	outer := r.Inset(-0.5).Scale(s)
	inner := r.Inset(0.5).Scale(s)
	orad := (radius + 0.5) * s
	irad := math.Max(radius-0.5, 0) * s
	return Ring(w, h, outer, orad, orad, inner, irad, irad)
}

// addRoundedRect appends a closed rounded rectangle contour to z. The
// contour runs clockwise on screen, or counter-clockwise when reverse is set.
func addRoundedRect(z *vector.Rasterizer, r Rect, rx, ry float64, reverse bool) {
	rx = math.Max(0, math.Min(rx, r.Dx()/2))
	ry = math.Max(0, math.Min(ry, r.Dy()/2))

	x0, y0 := float32(r.X0), float32(r.Y0)
	x1, y1 := float32(r.X1), float32(r.Y1)
	ax, ay := float32(rx), float32(ry)
	cx, cy := ax*(1-kappa), ay*(1-kappa)

	z.MoveTo(x0+ax, y0)
	if !reverse {
		z.LineTo(x1-ax, y0)
		z.CubeTo(x1-cx, y0, x1, y0+cy, x1, y0+ay)
		z.LineTo(x1, y1-ay)
		z.CubeTo(x1, y1-cy, x1-cx, y1, x1-ax, y1)
		z.LineTo(x0+ax, y1)
		z.CubeTo(x0+cx, y1, x0, y1-cy, x0, y1-ay)
		z.LineTo(x0, y0+ay)
		z.CubeTo(x0, y0+cy, x0+cx, y0, x0+ax, y0)
	} else {
		z.CubeTo(x0+cx, y0, x0, y0+cy, x0, y0+ay)
		z.LineTo(x0, y1-ay)
		z.CubeTo(x0, y1-cy, x0+cx, y1, x0+ax, y1)
		z.LineTo(x1-ax, y1)
		z.CubeTo(x1-cx, y1, x1, y1-cy, x1, y1-ay)
		z.LineTo(x1, y0+ay)
		z.CubeTo(x1, y0+cy, x1-cx, y0, x1-ax, y0)
	}
	z.ClosePath()
}
