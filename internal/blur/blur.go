package blur

import "image"

// Alpha blurs the samples of p inside r with a triple box blur of the given
// radius. An empty r selects the whole plane; r is clipped to the plane.
//
// Rows are filtered first, then columns. Samples outside r are never read,
// so the blur treats the edges of r as clamped edges. Radii below MinRadius
// leave the plane untouched.
func Alpha(p Plane, radius int, r image.Rectangle) {
	if radius < MinRadius {
		return
	}
	if r.Empty() {
		r = p.Bounds()
	}
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return
	}

	lobes := ComputeLobes(radius)
	width := r.Dx()
	height := r.Dy()

	// Scratch is per call: concurrent renders must not share it.
	span := max(width, height)
	scratch := make([]byte, 2*span)

	a := scratchLine(scratch[:width])
	b := scratchLine(scratch[span : span+width])
	for y := r.Min.Y; y < r.Max.Y; y++ {
		boxBlurChain(p.Line(r.Min.X, y, width, false), a, b, &lobes)
	}

	a = scratchLine(scratch[:height])
	b = scratchLine(scratch[span : span+height])
	for x := r.Min.X; x < r.Max.X; x++ {
		boxBlurChain(p.Line(x, r.Min.Y, height, true), a, b, &lobes)
	}
}

// Quadrant returns the top-left quadrant of a w×h plane, rounded up.
func Quadrant(w, h int) image.Rectangle {
	return image.Rect(0, 0, (w+1)/2, (h+1)/2)
}

// MirrorTopLeftQuadrant copies the top-left quadrant of p into the other
// three quadrants, reflecting about the vertical and horizontal center lines.
func MirrorTopLeftQuadrant(p Plane) {
	q := Quadrant(p.Width, p.Height)

	for y := 0; y < q.Max.Y; y++ {
		for x := 0; x < q.Max.X; x++ {
			p.Set(p.Width-1-x, y, p.At(x, y))
		}
	}

	for y := 0; y < q.Max.Y; y++ {
		for x := 0; x < p.Width; x++ {
			p.Set(x, p.Height-1-y, p.At(x, y))
		}
	}
}

// SymmetricAlpha blurs the whole plane assuming its content is symmetric
// about both center lines: only the top-left quadrant is blurred and the
// result is mirrored into the rest. Asymmetric content must use Alpha.
// The mirror runs even below MinRadius.
//
// The blurred area extends Reach(radius)+1 samples past the center lines,
// so quadrant samples read real neighbours there instead of clamped ones
// and match a full blur even when the content is narrower than the blur.
func SymmetricAlpha(p Plane, radius int) {
	q := Quadrant(p.Width, p.Height)
	if radius >= MinRadius {
		n := Reach(radius) + 1
		Alpha(p, radius, image.Rect(0, 0, q.Max.X+n, q.Max.Y+n))
	}
	MirrorTopLeftQuadrant(p)
}

// Reach returns how far, in samples, the three passes of a blur spread a
// sample in either direction.
func Reach(radius int) int {
	if radius < MinRadius {
		return 0
	}
	return Radius(StdDev(radius))
}
