package color

// sRGB8ToLinearLUT maps every 8-bit sRGB code to linear light.
// Entries are produced by SRGBToLinear itself, so a lookup returns exactly
// what SRGBToLinear(float32(v)/255) would. 1KB memory cost.
var sRGB8ToLinearLUT [256]float32

func init() {
	for i := range sRGB8ToLinearLUT {
		sRGB8ToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
}

// SRGB8ToLinear converts an 8-bit sRGB code to linear float32 using the
// lookup table.
//
// Example:
//
//	r := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float32 {
	return sRGB8ToLinearLUT[s]
}

// SRGB8ToLinearSlow is the reference path for SRGB8ToLinear.
// Used for testing and verification only.
func SRGB8ToLinearSlow(s uint8) float32 {
	return SRGBToLinear(float32(s) / 255)
}
