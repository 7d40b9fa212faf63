package colortransform

import "github.com/gogpu/colortransform/internal/color"

// LinearToRGBM encodes a linear RGB sample into RGBM.
//
// RGB is square-root encoded (gamma 2.0), divided by 16 to map the [0,16]
// linear range into [0,1], and divided by a shared multiplier M stored in
// the fourth channel. M is the largest encoded channel clamped to
// [1/16, 1] and rounded up to a multiple of 1/255, so M read back from an
// 8-bit channel is never smaller than the value the encoder needed.
//
// Negative or NaN input is not sanitized: the square root yields NaN, which
// propagates into the output. Callers pre-clamp when that matters.
func LinearToRGBM(linear Float3) Float4 {
	rgb := linear.Sqrt().DivScalar(color.RGBMRange)

	m := maxf(maxf(rgb[0], rgb[1]), maxf(rgb[2], color.RGBMEpsilon))
	m = color.Clamp(m, color.RGBMMinMultiplier, 1)
	m = color.QuantizeMultiplier(m)

	return rgb.DivScalar(m).Saturate().WithAlpha(m)
}

// RGBMToLinear decodes an RGBM sample back to linear RGB.
// The result is unbounded above.
func RGBMToLinear(rgbm Float4) Float3 {
	l := rgbm.RGB().Scale(rgbm[3] * color.RGBMRange)
	return l.Mul(l)
}

// LinearToSRGB encodes one linear channel with the sRGB curve:
// l*12.92 up to 0.0031308, 1.055*l^(1/2.4)-0.055 above.
func LinearToSRGB(l float32) float32 {
	return color.LinearToSRGB(l)
}

// SRGBToLinear decodes one sRGB channel:
// s/12.92 up to 0.04045, ((s+0.055)/1.055)^2.4 above.
func SRGBToLinear(s float32) float32 {
	return color.SRGBToLinear(s)
}

// LinearToSRGB3 applies LinearToSRGB to each channel. It agrees bit for bit
// with the scalar form.
func LinearToSRGB3(c Float3) Float3 {
	return Float3{LinearToSRGB(c[0]), LinearToSRGB(c[1]), LinearToSRGB(c[2])}
}

// LinearToSRGB4 encodes the RGB channels of a four-channel sample.
// The fourth channel is not carried; callers that need alpha reattach it.
func LinearToSRGB4(c Float4) Float3 {
	return LinearToSRGB3(c.RGB())
}

// SRGBToLinear3 applies SRGBToLinear to each channel.
func SRGBToLinear3(c Float3) Float3 {
	return Float3{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2])}
}

// SRGBToLinear4 decodes RGB and passes the fourth channel through as linear
// alpha.
func SRGBToLinear4(c Float4) Float4 {
	return Float4{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2]), c[3]}
}

// SRGB8ToLinear decodes an 8-bit sRGB code through a lookup table. The
// result equals SRGBToLinear(float32(s)/255) exactly.
func SRGB8ToLinear(s uint8) float32 {
	return color.SRGB8ToLinear(s)
}

// Saturate clamps v to [0, 1].
func Saturate(v float32) float32 {
	return color.Saturate(v)
}
