package boxshadow

import (
	"image"
	"math"
)

// Image is a rendered shadow texture: a surface plus the device pixel ratio
// it was rasterized at. A nil *Image is the empty result.
type Image struct {
	*Surface
	DevicePixelRatio float64
}

// IsNull reports whether the image is empty. It is safe to call on nil.
func (im *Image) IsNull() bool {
	return im == nil || im.Surface == nil || im.width == 0 || im.height == 0
}

// LogicalSize returns the image size in logical pixels.
func (im *Image) LogicalSize() image.Point {
	if im.IsNull() {
		return image.Point{}
	}
	return scaleSize(im.Size(), 1/im.DevicePixelRatio)
}

// scaleSize multiplies each dimension by f, rounding to the nearest pixel.
func scaleSize(p image.Point, f float64) image.Point {
	return image.Pt(roundInt(float64(p.X)*f), roundInt(float64(p.Y)*f))
}

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}
