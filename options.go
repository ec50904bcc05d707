package boxshadow

import "image"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := boxshadow.NewRenderer(
//	    boxshadow.WithBoxSize(image.Pt(64, 48)),
//	    boxshadow.WithDevicePixelRatio(2),
//	)
type RendererOption func(*Renderer)

// WithBoxSize sets the box size in logical pixels.
func WithBoxSize(size image.Point) RendererOption {
	return func(r *Renderer) {
		r.SetBoxSize(size)
	}
}

// WithBorderRadius sets the corner radius of the box in logical pixels.
func WithBorderRadius(radius float64) RendererOption {
	return func(r *Renderer) {
		r.SetBorderRadius(radius)
	}
}

// WithDevicePixelRatio sets the ratio between raster and logical pixels.
func WithDevicePixelRatio(dpr float64) RendererOption {
	return func(r *Renderer) {
		r.SetDevicePixelRatio(dpr)
	}
}

// WithShadows appends shadows in order, as AddShadow does.
func WithShadows(shadows ...Shadow) RendererOption {
	return func(r *Renderer) {
		r.shadows = append(r.shadows, shadows...)
	}
}
