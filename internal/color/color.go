// Package color provides the scalar transfer curves behind colortransform.
//
// Everything here works on a single float32 channel value. The vector forms,
// RGBM packing and bulk conversion live in the root package and are built
// from these functions so that every code path shares one implementation of
// each curve.
package color

// ColorSpace identifies how the channel values of a buffer are encoded.
type ColorSpace uint8

const (
	// ColorSpaceLinear holds values proportional to radiance.
	ColorSpaceLinear ColorSpace = iota
	// ColorSpaceSRGB holds values encoded with the sRGB transfer curve.
	ColorSpaceSRGB
	// ColorSpaceRGBM holds square-root encoded RGB in [0,1] plus a shared
	// multiplier in the fourth channel.
	ColorSpaceRGBM
)

// String returns the name of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceLinear:
		return "linear"
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceRGBM:
		return "RGBM"
	default:
		return "unknown"
	}
}
