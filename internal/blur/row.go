package blur

// boxBlurLine writes the box-filtered src into dst.
//
// Samples outside the line repeat the nearest edge value. The window sum is
// maintained incrementally and divided with a 24-bit fixed-point reciprocal,
// so each output costs one multiply and a shift regardless of the window.
// The sum starts at (width+1)/2 so the shift rounds to nearest.
// src and dst must have the same length and must not alias.
func boxBlurLine(src, dst Line, l Lobes) {
	n := src.Len()
	if n == 0 {
		return
	}

	width := l.Width()
	reciprocal := uint32((1 << 24) / width)

	first := uint32(src.At(0))
	last := uint32(src.At(n - 1))
	sample := func(i int) uint32 {
		switch {
		case i < 0:
			return first
		case i >= n:
			return last
		default:
			return uint32(src.At(i))
		}
	}

	sum := uint32((width + 1) / 2)
	sum += first * uint32(l.Left)
	for i := 0; i <= l.Right; i++ {
		sum += sample(i)
	}

	for x := 0; x < n; x++ {
		dst.Set(x, byte((sum*reciprocal)>>24))
		sum += sample(x + l.Right + 1)
		sum -= sample(x - l.Left)
	}
}

// boxBlurChain runs the three passes of a triple box blur over line in place,
// bouncing through the scratch lines a and b.
func boxBlurChain(line, a, b Line, lobes *[3]Lobes) {
	boxBlurLine(line, a, lobes[0])
	boxBlurLine(a, b, lobes[1])
	boxBlurLine(b, line, lobes[2])
}
