package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearToSRGBEdgeCases tests edge cases for linear to sRGB conversion.
func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, float32(1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055)},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
		{"negative stays linear", -0.5, -0.5 * 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestBreakpointContinuity checks both branches agree at the joint.
func TestBreakpointContinuity(t *testing.T) {
	l := SRGBLinearThreshold
	lo := l * SRGBSlope
	hi := float32(SRGBScale*Pow(l, SRGBInvGamma)) - SRGBOffset
	if !floatNear(lo, hi, 1e-6) {
		t.Errorf("encode branches at %v: linear=%v, power=%v", l, lo, hi)
	}

	s := SRGBEncodedThreshold
	lo = s / SRGBSlope
	hi = Pow((s+SRGBOffset)/SRGBScale, SRGBGamma)
	if !floatNear(lo, hi, 1e-6) {
		t.Errorf("decode branches at %v: linear=%v, power=%v", s, lo, hi)
	}
}

// TestRoundTripLinearSRGB tests that decode inverts encode on [0,1].
func TestRoundTripLinearSRGB(t *testing.T) {
	const maxError = 1e-5

	for i := 0; i <= 4096; i++ {
		linear := float32(i) / 4096
		roundTrip := SRGBToLinear(LinearToSRGB(linear))

		if !floatNear(roundTrip, linear, maxError) {
			t.Errorf("round trip of %v: got %v", linear, roundTrip)
		}
	}
}

// TestMonotonic checks both curves strictly increase on [0,1].
func TestMonotonic(t *testing.T) {
	prevEnc, prevDec := LinearToSRGB(0), SRGBToLinear(0)
	for i := 1; i <= 1000; i++ {
		v := float32(i) / 1000
		enc, dec := LinearToSRGB(v), SRGBToLinear(v)
		if enc <= prevEnc {
			t.Fatalf("LinearToSRGB not increasing at %v: %v <= %v", v, enc, prevEnc)
		}
		if dec <= prevDec {
			t.Fatalf("SRGBToLinear not increasing at %v: %v <= %v", v, dec, prevDec)
		}
		prevEnc, prevDec = enc, dec
	}
}

func TestQuantizeMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"minimum", 1.0 / 16.0, 16.0 / 255.0}, // 15.9375 rounds up to 16
		{"exact step", 46.0 / 255.0, 46.0 / 255.0},
		{"between steps", 0.17677669, 46.0 / 255.0},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuantizeMultiplier(tt.input)
			if !floatNear(got, tt.want, 1e-7) {
				t.Errorf("QuantizeMultiplier(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got < tt.input {
				t.Errorf("QuantizeMultiplier(%v) = %v rounds down", tt.input, got)
			}
		})
	}
}

func TestClampKeepsNaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := Saturate(nan); !math.IsNaN(float64(got)) {
		t.Errorf("Saturate(NaN) = %v, want NaN", got)
	}
	if got := Saturate(float32(-2)); got != 0 {
		t.Errorf("Saturate(-2) = %v, want 0", got)
	}
	if got := Saturate(2.0); got != 1 {
		t.Errorf("Saturate(2) = %v, want 1", got)
	}
}

func TestSqrtNegative(t *testing.T) {
	if got := Sqrt(-1); !math.IsNaN(float64(got)) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
	if got := Sqrt(16); got != 4 {
		t.Errorf("Sqrt(16) = %v, want 4", got)
	}
}

func TestColorSpaceString(t *testing.T) {
	tests := []struct {
		cs   ColorSpace
		want string
	}{
		{ColorSpaceLinear, "linear"},
		{ColorSpaceSRGB, "sRGB"},
		{ColorSpaceRGBM, "RGBM"},
		{ColorSpace(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cs.String(); got != tt.want {
			t.Errorf("ColorSpace(%d).String() = %q, want %q", tt.cs, got, tt.want)
		}
	}
}

// floatNear checks if two float32 values are within epsilon of each other.
func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}
