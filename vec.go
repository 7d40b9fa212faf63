package colortransform

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/colortransform/internal/color"
)

// Float3 is a three-channel color sample (R, G, B).
// It shares its layout with f32.Vec3 and converts to it freely.
type Float3 f32.Vec3

// Float4 is a four-channel color sample (R, G, B, A). For RGBM samples the
// fourth channel holds the multiplier.
type Float4 f32.Vec4

// F3 is a convenience function to create a Float3.
func F3(r, g, b float32) Float3 {
	return Float3{r, g, b}
}

// F4 is a convenience function to create a Float4.
func F4(r, g, b, a float32) Float4 {
	return Float4{r, g, b, a}
}

// Splat3 returns a Float3 with every channel set to v.
func Splat3(v float32) Float3 {
	return Float3{v, v, v}
}

// Add returns the componentwise sum.
func (c Float3) Add(o Float3) Float3 {
	return Float3{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// Sub returns the componentwise difference.
func (c Float3) Sub(o Float3) Float3 {
	return Float3{c[0] - o[0], c[1] - o[1], c[2] - o[2]}
}

// Mul returns the componentwise product.
func (c Float3) Mul(o Float3) Float3 {
	return Float3{c[0] * o[0], c[1] * o[1], c[2] * o[2]}
}

// Div returns the componentwise quotient.
func (c Float3) Div(o Float3) Float3 {
	return Float3{c[0] / o[0], c[1] / o[1], c[2] / o[2]}
}

// Scale multiplies every channel by s.
func (c Float3) Scale(s float32) Float3 {
	return Float3{c[0] * s, c[1] * s, c[2] * s}
}

// DivScalar divides every channel by s.
func (c Float3) DivScalar(s float32) Float3 {
	return Float3{c[0] / s, c[1] / s, c[2] / s}
}

// Min returns the componentwise minimum.
func (c Float3) Min(o Float3) Float3 {
	return Float3{minf(c[0], o[0]), minf(c[1], o[1]), minf(c[2], o[2])}
}

// Max returns the componentwise maximum.
func (c Float3) Max(o Float3) Float3 {
	return Float3{maxf(c[0], o[0]), maxf(c[1], o[1]), maxf(c[2], o[2])}
}

// MaxComponent returns the largest of R, G and B.
func (c Float3) MaxComponent() float32 {
	return maxf(maxf(c[0], c[1]), c[2])
}

// Pow raises every channel to e.
func (c Float3) Pow(e float32) Float3 {
	return Float3{color.Pow(c[0], e), color.Pow(c[1], e), color.Pow(c[2], e)}
}

// Sqrt returns the componentwise square root. Negative channels become NaN.
func (c Float3) Sqrt() Float3 {
	return Float3{color.Sqrt(c[0]), color.Sqrt(c[1]), color.Sqrt(c[2])}
}

// Saturate clamps every channel to [0, 1].
func (c Float3) Saturate() Float3 {
	return Float3{color.Saturate(c[0]), color.Saturate(c[1]), color.Saturate(c[2])}
}

// WithAlpha extends c to a Float4.
func (c Float3) WithAlpha(a float32) Float4 {
	return Float4{c[0], c[1], c[2], a}
}

// Vec returns c as an f32.Vec3.
func (c Float3) Vec() f32.Vec3 {
	return f32.Vec3(c)
}

// RGB drops the fourth channel.
func (c Float4) RGB() Float3 {
	return Float3{c[0], c[1], c[2]}
}

// Add returns the componentwise sum.
func (c Float4) Add(o Float4) Float4 {
	return Float4{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}
}

// Sub returns the componentwise difference.
func (c Float4) Sub(o Float4) Float4 {
	return Float4{c[0] - o[0], c[1] - o[1], c[2] - o[2], c[3] - o[3]}
}

// Mul returns the componentwise product.
func (c Float4) Mul(o Float4) Float4 {
	return Float4{c[0] * o[0], c[1] * o[1], c[2] * o[2], c[3] * o[3]}
}

// Div returns the componentwise quotient.
func (c Float4) Div(o Float4) Float4 {
	return Float4{c[0] / o[0], c[1] / o[1], c[2] / o[2], c[3] / o[3]}
}

// Scale multiplies every channel by s.
func (c Float4) Scale(s float32) Float4 {
	return Float4{c[0] * s, c[1] * s, c[2] * s, c[3] * s}
}

// DivScalar divides every channel by s.
func (c Float4) DivScalar(s float32) Float4 {
	return Float4{c[0] / s, c[1] / s, c[2] / s, c[3] / s}
}

// Min returns the componentwise minimum.
func (c Float4) Min(o Float4) Float4 {
	return Float4{minf(c[0], o[0]), minf(c[1], o[1]), minf(c[2], o[2]), minf(c[3], o[3])}
}

// Max returns the componentwise maximum.
func (c Float4) Max(o Float4) Float4 {
	return Float4{maxf(c[0], o[0]), maxf(c[1], o[1]), maxf(c[2], o[2]), maxf(c[3], o[3])}
}

// Pow raises every channel to e.
func (c Float4) Pow(e float32) Float4 {
	return Float4{color.Pow(c[0], e), color.Pow(c[1], e), color.Pow(c[2], e), color.Pow(c[3], e)}
}

// Sqrt returns the componentwise square root. Negative channels become NaN.
func (c Float4) Sqrt() Float4 {
	return Float4{color.Sqrt(c[0]), color.Sqrt(c[1]), color.Sqrt(c[2]), color.Sqrt(c[3])}
}

// Saturate clamps every channel to [0, 1].
func (c Float4) Saturate() Float4 {
	return Float4{color.Saturate(c[0]), color.Saturate(c[1]), color.Saturate(c[2]), color.Saturate(c[3])}
}

// Vec returns c as an f32.Vec4.
func (c Float4) Vec() f32.Vec4 {
	return f32.Vec4(c)
}

// maxf returns b if a < b, otherwise a. A NaN in a is kept.
func maxf(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}

// minf returns b if b < a, otherwise a. A NaN in a is kept.
func minf(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}
