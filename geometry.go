package boxshadow

import (
	"image"

	"github.com/gogpu/boxshadow/internal/blur"
)

// BlurExtent returns the margin, in logical pixels, a shadow of the given
// blur radius spreads beyond its box. It is at least blur.MinRadius, even
// for radius 0.
func BlurExtent(radius int) int {
	return blur.Radius(blur.StdDev(radius))
}

// MinimumBoxSize returns the smallest box whose shadow of the given radius
// still has a fully opaque centre: twice the blur extent plus one pixel in
// each direction.
func MinimumBoxSize(radius int) image.Point {
	n := 2*BlurExtent(radius) + 1
	return image.Pt(n, n)
}

// MinimumShadowTextureSize returns the smallest texture that holds the
// shadow of a box without clipping. It grows with radius and |offset|.
func MinimumShadowTextureSize(box image.Point, radius int, offset image.Point) image.Point {
	e := 2 * BlurExtent(radius)
	return image.Pt(box.X+e+abs(offset.X), box.Y+e+abs(offset.Y))
}

// CenterOf returns the center pixel of r, rounding towards the top-left
// for even sizes. The renderer centers boxes with it; callers that need to
// locate the box inside a rendered image must use the same rule.
func CenterOf(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+(r.Dx()-1)/2, r.Min.Y+(r.Dy()-1)/2)
}

// RectAround returns a rectangle of the given size whose center pixel, as
// computed by CenterOf, is c.
func RectAround(c, size image.Point) image.Rectangle {
	tl := c.Sub(image.Pt((size.X-1)/2, (size.Y-1)/2))
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}

// expandedTo returns the component-wise maximum of a and b.
func expandedTo(a, b image.Point) image.Point {
	return image.Pt(max(a.X, b.X), max(a.Y, b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
