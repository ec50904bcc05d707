package blend

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
// The +127 provides correct rounding (equivalent to adding 0.5 before truncation).
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// Premultiply converts a straight-alpha color to premultiplied form.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}

// Unpremultiply converts a premultiplied color back to straight alpha.
// Fully transparent colors become transparent black.
func Unpremultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	un := func(c byte) byte {
		v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	return un(r), un(g), un(b), a
}
