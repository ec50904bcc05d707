package boxshadow

import (
	"image"
	"log/slog"
	"slices"
)

// Renderer accumulates box geometry and an ordered list of shadows and
// renders them into one texture.
//
// A Renderer is not safe for concurrent mutation, but separate renderers
// share no state and may render concurrently.
type Renderer struct {
	boxSize      image.Point
	borderRadius float64
	dpr          float64
	shadows      []Shadow
}

// NewRenderer creates a renderer with an empty box, square corners, a device
// pixel ratio of 1 and no shadows.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{dpr: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetBoxSize sets the box size in logical pixels.
func (r *Renderer) SetBoxSize(size image.Point) {
	assertf(size.X >= 0 && size.Y >= 0, "negative box size %v", size)
	r.boxSize = size
}

// BoxSize returns the box size in logical pixels.
func (r *Renderer) BoxSize() image.Point {
	return r.boxSize
}

// SetBorderRadius sets the corner radius of the box in logical pixels.
func (r *Renderer) SetBorderRadius(radius float64) {
	assertf(radius >= 0, "negative border radius %v", radius)
	r.borderRadius = radius
}

// BorderRadius returns the corner radius of the box.
func (r *Renderer) BorderRadius() float64 {
	return r.borderRadius
}

// SetDevicePixelRatio sets the ratio between raster and logical pixels.
// Ratios that are not positive are treated as 1.
func (r *Renderer) SetDevicePixelRatio(dpr float64) {
	assertf(dpr > 0, "non-positive device pixel ratio %v", dpr)
	if !(dpr > 0) {
		dpr = 1
	}
	r.dpr = dpr
}

// DevicePixelRatio returns the ratio between raster and logical pixels.
func (r *Renderer) DevicePixelRatio() float64 {
	return r.dpr
}

// AddShadow appends a shadow. Shadows are painted in the order they were
// added, so later shadows appear on top.
func (r *Renderer) AddShadow(offset image.Point, radius int, c Color) {
	assertf(radius >= 0, "negative shadow radius %d", radius)
	r.shadows = append(r.shadows, Shadow{Offset: offset, Radius: radius, Color: c})
}

// Shadows returns a copy of the shadow list.
func (r *Renderer) Shadows() []Shadow {
	return slices.Clone(r.shadows)
}

// ClearShadows removes every shadow.
func (r *Renderer) ClearShadows() {
	r.shadows = nil
}

// CanvasSize returns the logical size of the texture Render produces: the
// largest MinimumShadowTextureSize over all shadows.
func (r *Renderer) CanvasSize() image.Point {
	var size image.Point
	for _, s := range r.shadows {
		size = expandedTo(size, MinimumShadowTextureSize(r.boxSize, s.Radius, s.Offset))
	}
	return size
}

// Render draws every shadow into a new texture of CanvasSize times the
// device pixel ratio, with the box centered. It returns nil when no shadows
// were added.
func (r *Renderer) Render() *Image {
	if len(r.shadows) == 0 {
		return nil
	}

	canvasSize := r.CanvasSize()
	phys := scaleSize(canvasSize, r.dpr)
	canvas := NewSurface(phys.X, phys.Y)

	box := RectAround(CenterOf(image.Rectangle{Max: canvasSize}), r.boxSize)
	for _, s := range r.shadows {
		drawShadow(canvas, box, r.borderRadius, s, r.dpr)
	}

	Logger().Debug("boxshadow: render",
		slog.Any("box", r.boxSize),
		slog.Any("canvas", phys),
		slog.Float64("dpr", r.dpr),
		slog.Int("shadows", len(r.shadows)))

	return &Image{Surface: canvas, DevicePixelRatio: r.dpr}
}
