package blend

// Span blends the premultiplied RGBA pixels of src onto dst.
// Only the first min(len(dst), len(src))/4 pixels are touched.
func Span(mode Mode, dst, src []byte) {
	fn := GetFunc(mode)
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i+0], src[i+1], src[i+2], src[i+3],
			dst[i+0], dst[i+1], dst[i+2], dst[i+3])
	}
}

// Uniform blends one premultiplied color onto every pixel of dst.
func Uniform(mode Mode, dst []byte, r, g, b, a byte) {
	fn := GetFunc(mode)
	n := len(dst) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			r, g, b, a,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3])
	}
}

// Masked blends one premultiplied color, scaled by a per-pixel coverage
// value, onto dst. mask holds one byte per pixel.
func Masked(mode Mode, dst, mask []byte, r, g, b, a byte) {
	fn := GetFunc(mode)
	// A transparent source leaves dst unchanged for these operators.
	skipZero := mode == SourceOver || mode == DestinationOut
	n := min(len(dst)/4, len(mask))
	for p := 0; p < n; p++ {
		m := mask[p]
		if m == 0 && skipZero {
			continue
		}
		i := p * 4
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			mulDiv255(r, m), mulDiv255(g, m), mulDiv255(b, m), mulDiv255(a, m),
			dst[i+0], dst[i+1], dst[i+2], dst[i+3])
	}
}
