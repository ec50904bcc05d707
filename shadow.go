package boxshadow

import (
	"image"
	"math"

	"github.com/gogpu/boxshadow/internal/blend"
	"github.com/gogpu/boxshadow/internal/blur"
	"github.com/gogpu/boxshadow/internal/mask"
)

// Shadow describes one drop shadow of a box.
type Shadow struct {
	// Offset displaces the shadow from the box, in logical pixels.
	Offset image.Point

	// Radius is the blur radius in logical pixels.
	Radius int

	// Color tints the shadow; its alpha is the shadow opacity.
	Color Color
}

// cornerRadii clamps a border radius to half the box size on each axis, so
// long thin boxes get elliptical corners.
func cornerRadii(box image.Point, borderRadius float64) (rx, ry float64) {
	r := math.Max(borderRadius, 0)
	return math.Min(r, float64(box.X)/2), math.Min(r, float64(box.Y)/2)
}

// renderShadow draws the blurred, tinted shadow of a box into a new surface
// of (box + 2*extent) * dpr pixels with the box centered.
func renderShadow(box image.Point, borderRadius float64, s Shadow, dpr float64) *Surface {
	shadow := shadowMask(box, borderRadius, BlurExtent(s.Radius), dpr)

	// The mask is symmetric about both center lines.
	blur.SymmetricAlpha(shadow.alphaPlane(), roundInt(float64(s.Radius)*dpr))

	r, g, b, a := s.Color.Premultiplied()
	for y := 0; y < shadow.height; y++ {
		blend.Uniform(blend.SourceIn, shadow.Row(y), r, g, b, a)
	}
	return shadow
}

// shadowMask returns an opaque black rounded box centered in a surface of
// (box + 2*extent) * dpr pixels. The box is placed by splitting the spare
// raster pixels evenly, so it stays symmetric when dpr is fractional.
func shadowMask(box image.Point, borderRadius float64, extent int, dpr float64) *Surface {
	size := box.Add(image.Pt(2*extent, 2*extent))
	phys := scaleSize(size, dpr)
	m := NewSurface(phys.X, phys.Y)

	w, h := float64(box.X)*dpr, float64(box.Y)*dpr
	x0, y0 := (float64(phys.X)-w)/2, (float64(phys.Y)-h)/2
	rect := mask.Rect{X0: x0, Y0: y0, X1: x0 + w, Y1: y0 + h}

	rx, ry := cornerRadii(box, borderRadius)
	coverage := mask.RoundedRect(phys.X, phys.Y, rect, rx*dpr, ry*dpr)
	m.FillMasked(coverage, Black, blend.SourceOver)
	return m
}

// drawShadow renders one shadow of box and composites it over canvas,
// centered on the box center plus the shadow offset. box is in logical
// canvas coordinates.
func drawShadow(canvas *Surface, box image.Rectangle, borderRadius float64, s Shadow, dpr float64) {
	shadow := renderShadow(box.Size(), borderRadius, s, dpr)

	logical := scaleSize(shadow.Size(), 1/dpr)
	at := RectAround(CenterOf(box).Add(s.Offset), logical).Min
	canvas.Composite(scalePoint(at, dpr), shadow, blend.SourceOver)
}

// scalePoint converts a logical position to raster pixels.
func scalePoint(p image.Point, dpr float64) image.Point {
	return image.Pt(roundInt(float64(p.X)*dpr), roundInt(float64(p.Y)*dpr))
}
