// Package blend implements the Porter-Duff operators used to build shadow
// textures.
//
// All operations work with premultiplied alpha values in the range 0-255,
// laid out as R, G, B, A bytes (the layout of image.RGBA).
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	SourceOver      Mode = iota // Result: S + D*(1-Sa) [default]
	SourceIn                    // Result: S*Da
	DestinationOut              // Result: D*(1-Sa)
	DestinationIn               // Result: D*Sa
	Source                      // Result: S
	Clear                       // Result: 0
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case SourceIn:
		return "SourceIn"
	case DestinationOut:
		return "DestinationOut"
	case DestinationIn:
		return "DestinationIn"
	case Source:
		return "Source"
	case Clear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns SourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case SourceIn:
		return blendSourceIn
	case DestinationOut:
		return blendDestinationOut
	case DestinationIn:
		return blendDestinationIn
	case Source:
		return blendSource
	case Clear:
		return blendClear
	default:
		return blendSourceOver
	}
}

// blendClear clears the destination to transparent black.
func blendClear(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// blendSource replaces destination with source.
func blendSource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendSourceIn shows source where destination is opaque.
// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// blendDestinationIn shows destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// blendDestinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDestinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}
