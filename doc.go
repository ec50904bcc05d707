// Package boxshadow renders soft drop-shadow textures for rectangular boxes.
//
// # Overview
//
// A box is a window or widget outline of a given size, optionally with
// rounded corners. The renderer draws one or more shadows of that box into a
// premultiplied RGBA image which a caller composites underneath the box.
//
// # Quick Start
//
//	r := boxshadow.NewRenderer(
//	    boxshadow.WithBoxSize(image.Pt(100, 60)),
//	    boxshadow.WithBorderRadius(4),
//	)
//	r.AddShadow(image.Pt(0, 4), 16, boxshadow.RGBA8(0, 0, 0, 128))
//
//	img := r.Render()
//	if img.IsNull() {
//	    return
//	}
//	img.SavePNG("shadow.png")
//
// # Blur
//
// Each shadow is a rounded rectangle whose alpha channel is blurred with a
// triple box blur, the linear-time Gaussian approximation used by CSS and
// SVG. Because the mask is symmetric only its top-left quadrant is blurred;
// the result is mirrored into the other three.
//
// # Sizing
//
// BlurExtent, MinimumBoxSize and MinimumShadowTextureSize are the formulas the
// renderer uses to size its canvas. Layout code calls them before rendering
// so the box reserves enough margin for the shadow not to clip.
//
// # Device Pixel Ratio
//
// Box geometry, offsets and radii are in logical pixels. The rendered image
// is rasterized at logical size times the device pixel ratio and carries that
// ratio with it.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package boxshadow

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
