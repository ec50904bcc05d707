package blur

import "math"

// gaussianScaleFactor converts a standard deviation into a box size.
// See https://www.w3.org/TR/SVG11/filters.html#feGaussianBlurElement; the
// extra 1.5 widens the box to match the reference renderer.
var gaussianScaleFactor = (3.0 * math.Sqrt(2.0*math.Pi) / 4.0) * 1.5

// MinRadius is the smallest blur radius that changes the image.
// Alpha and SymmetricAlpha return immediately for smaller radii.
const MinRadius = 2

// Lobes describes the window of one box filter pass around its center sample.
type Lobes struct {
	// Left is how many samples to the left are averaged.
	Left int

	// Right is how many samples to the right are averaged.
	Right int
}

// Width returns the number of samples in the box window.
func (l Lobes) Width() int {
	return l.Left + 1 + l.Right
}

// StdDev returns the Gaussian standard deviation for a CSS-style blur radius.
// See https://www.w3.org/TR/css-backgrounds-3/#shadow-blur
func StdDev(radius int) float64 {
	return float64(radius) * 0.5
}

// Radius returns the effective pixel blur radius for a standard deviation.
// The result is never less than 2.
func Radius(stdDev float64) int {
	return max(2, int(math.Floor(stdDev*gaussianScaleFactor+0.5)))
}

// ComputeLobes returns the three box filter windows for a blur radius.
//
// The effective radius b = Radius(StdDev(radius)) is split into
// major+minor+final == b; the passes are {major, minor}, {minor, major}
// and {final, final}, so both the left and the right lobes sum to b.
func ComputeLobes(radius int) [3]Lobes {
	b := Radius(StdDev(radius))
	z := b / 3

	var major, minor, final int
	switch b % 3 {
	case 0:
		major, minor, final = z, z, z
	case 1:
		major, minor, final = z+1, z, z
	default:
		major, minor, final = z+1, z, z+1
	}

	return [3]Lobes{
		{Left: major, Right: minor},
		{Left: minor, Right: major},
		{Left: final, Right: final},
	}
}
