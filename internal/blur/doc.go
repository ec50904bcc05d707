// Package blur implements the alpha-channel box blur used for shadow masks.
//
// A Gaussian blur is approximated by three chained box filters (a triple box
// blur). Each box filter runs over a line of alpha samples with a running sum,
// so the cost per sample does not depend on the blur radius:
//   - ComputeLobes turns a blur radius into three box filter windows
//   - Alpha sweeps rows then columns of a Plane with those windows
//   - SymmetricAlpha blurs the top-left quadrant and mirrors it
//
// The fixed-point reciprocal arithmetic matches the reference renderer bit
// for bit, so golden images stay stable.
package blur
