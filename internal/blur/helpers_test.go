package blur

// Test helper functions shared across blur tests.

// newTestPlane creates an RGBA-like plane addressing the alpha channel.
// pad adds unused bytes at the end of every row.
func newTestPlane(w, h, pad int) Plane {
	stride := w*4 + pad
	return Plane{
		Pix:       make([]byte, stride*h),
		Width:     w,
		Height:    h,
		Stride:    stride,
		PixelSize: 4,
		Channel:   3,
	}
}

// fillRect sets the samples of [x0,x1)×[y0,y1) to v.
func fillRect(p Plane, x0, y0, x1, y1 int, v byte) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.Set(x, y, v)
		}
	}
}

// clonePlane returns a deep copy of p.
func clonePlane(p Plane) Plane {
	q := p
	q.Pix = append([]byte(nil), p.Pix...)
	return q
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b byte) byte {
	if a > b {
		return a - b
	}
	return b - a
}
