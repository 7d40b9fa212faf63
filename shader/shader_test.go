package shader

import (
	"encoding/binary"
	"strings"
	"testing"
)

// TestSourcesContainRequiredElements checks every kernel module is complete.
func TestSourcesContainRequiredElements(t *testing.T) {
	tests := []struct {
		kernel   Kernel
		required []string
	}{
		{KernelLinearToSRGB, []string{"@compute", "@workgroup_size(64)", "linear_to_srgb3(c.xyz)", "0.0031308"}},
		{KernelSRGBToLinear, []string{"@compute", "srgb_to_linear3(c.xyz)", "0.04045"}},
		{KernelLinearToRGBM, []string{"@compute", "linear_to_rgbm(c.xyz)", "ceil("}},
		{KernelRGBMToLinear, []string{"@compute", "rgbm_to_linear(c)", "16.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.kernel.String(), func(t *testing.T) {
			src, err := Source(tt.kernel)
			if err != nil {
				t.Fatalf("Source(%v) = %v", tt.kernel, err)
			}
			for _, req := range tt.required {
				if !strings.Contains(src, req) {
					t.Errorf("%s shader missing required element: %q", tt.kernel, req)
				}
			}
			if n := strings.Count(src, "fn main("); n != 1 {
				t.Errorf("%s shader has %d entry points, want 1", tt.kernel, n)
			}
		})
	}
}

func TestSourceUnknownKernel(t *testing.T) {
	if _, err := Source(Kernel(42)); err == nil {
		t.Error("Source(42) should fail")
	}
	if got := Kernel(42).String(); got != "unknown" {
		t.Errorf("Kernel(42).String() = %q, want unknown", got)
	}
}

// TestKernelCompilation tests that each WGSL module compiles to SPIR-V.
func TestKernelCompilation(t *testing.T) {
	for _, k := range Kernels() {
		t.Run(k.String(), func(t *testing.T) {
			words, err := CompileSPIRV(k)
			if err != nil {
				errStr := err.Error()
				if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
					t.Skipf("Skipping: naga feature not yet implemented: %v", err)
				}
				t.Fatalf("failed to compile %s shader: %v", k, err)
			}

			if len(words) == 0 {
				t.Fatal("SPIR-V output is empty")
			}
			if words[0] != 0x07230203 {
				t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", words[0])
			}
		})
	}
}

func TestWorkgroups(t *testing.T) {
	tests := []struct {
		pixels int
		want   uint32
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{1920 * 1080, 32400},
	}
	for _, tt := range tests {
		if got := Workgroups(tt.pixels); got != tt.want {
			t.Errorf("Workgroups(%d) = %d, want %d", tt.pixels, got, tt.want)
		}
	}
}

func TestEncodeParams(t *testing.T) {
	buf := EncodeParams(1234)
	if len(buf) != ParamsSize {
		t.Fatalf("len = %d, want %d", len(buf), ParamsSize)
	}
	if got := binary.LittleEndian.Uint32(buf); got != 1234 {
		t.Errorf("pixel_count = %d, want 1234", got)
	}
	for i, b := range buf[4:] {
		if b != 0 {
			t.Errorf("padding byte %d = %d, want 0", i+4, b)
		}
	}
}
