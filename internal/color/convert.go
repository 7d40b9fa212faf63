package color

import (
	"math"

	"golang.org/x/exp/constraints"
)

// sRGB curve constants. The breakpoints and coefficients are exact at
// float32 precision; changing them moves the joint of the piecewise curve.
const (
	SRGBLinearThreshold  float32 = 0.0031308
	SRGBEncodedThreshold float32 = 0.04045
	SRGBSlope            float32 = 12.92
	SRGBScale            float32 = 1.055
	SRGBOffset           float32 = 0.055
	SRGBGamma            float32 = 2.4
	SRGBInvGamma         float32 = 1 / 2.4
)

// RGBM constants.
const (
	// RGBMRange is the linear range stored by RGBM after the square-root
	// encoding, i.e. encoded RGB is divided by RGBMRange before packing.
	RGBMRange float32 = 16

	// RGBMMinMultiplier keeps M from dropping below 1 in the [0..16] range.
	RGBMMinMultiplier float32 = 1.0 / 16.0

	// RGBMEpsilon is the floor of the max-component search.
	RGBMEpsilon float32 = 1e-6

	// RGBMMultiplierSteps is the resolution M is rounded up to.
	RGBMMultiplierSteps float32 = 255
)

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= SRGBEncodedThreshold {
		return s / SRGBSlope
	}
	return float32(math.Pow(float64((s+SRGBOffset)/SRGBScale), float64(SRGBGamma)))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// Inputs are not clamped. NaN stays NaN.
func LinearToSRGB(l float32) float32 {
	if l <= SRGBLinearThreshold {
		return l * SRGBSlope
	}
	p := float32(math.Pow(float64(l), float64(SRGBInvGamma)))
	// The conversion rounds the product so it is never fused with the
	// subtraction; results are identical on every architecture.
	return float32(SRGBScale*p) - SRGBOffset
}

// QuantizeMultiplier rounds an RGBM multiplier up to the next multiple of
// 1/255 so the 8-bit stored value never under-represents brightness.
func QuantizeMultiplier(m float32) float32 {
	return float32(math.Ceil(float64(m*RGBMMultiplierSteps))) / RGBMMultiplierSteps
}

// Sqrt returns the correctly rounded float32 square root of v.
// Negative input yields NaN.
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Pow returns v raised to e, rounded to float32.
func Pow(v, e float32) float32 {
	return float32(math.Pow(float64(v), float64(e)))
}

// Clamp restricts v to [lo, hi]. NaN is returned unchanged.
func Clamp[F constraints.Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate[F constraints.Float](v F) F {
	return Clamp(v, 0, 1)
}
