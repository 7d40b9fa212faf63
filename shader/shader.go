// Package shader provides GPU equivalents of the colortransform transfer
// functions.
//
// Each Kernel is a WGSL compute shader that reads vec4<f32> pixels from a
// storage buffer and writes converted pixels to another. The shaders share
// one set of transfer functions with the same constants as the CPU code, so
// texture uploaders can convert on either side.
//
// Bindings (group 0):
//   - binding 0: uniform Params (pixel_count u32, padded to 16 bytes)
//   - binding 1: storage, read: array<vec4<f32>> source pixels
//   - binding 2: storage, read_write: array<vec4<f32>> destination pixels
package shader

import (
	"embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/*.wgsl
var shaderFS embed.FS

// WorkgroupSize is the number of pixels one workgroup converts.
const WorkgroupSize = 64

// ParamsSize is the size in bytes of the Params uniform.
const ParamsSize = 16

// Kernel selects a conversion shader.
type Kernel uint8

const (
	// KernelLinearToSRGB encodes RGB with the sRGB curve and copies alpha.
	KernelLinearToSRGB Kernel = iota
	// KernelSRGBToLinear decodes RGB from sRGB and copies alpha.
	KernelSRGBToLinear
	// KernelLinearToRGBM encodes RGB as RGBM.
	KernelLinearToRGBM
	// KernelRGBMToLinear decodes RGBM to linear RGB with alpha 1.
	KernelRGBMToLinear

	kernelCount
)

var kernelFiles = [kernelCount]string{
	KernelLinearToSRGB: "linear_to_srgb",
	KernelSRGBToLinear: "srgb_to_linear",
	KernelLinearToRGBM: "linear_to_rgbm",
	KernelRGBMToLinear: "rgbm_to_linear",
}

// String returns the kernel name.
func (k Kernel) String() string {
	if k >= kernelCount {
		return "unknown"
	}
	return kernelFiles[k]
}

// Kernels returns every kernel.
func Kernels() []Kernel {
	ks := make([]Kernel, kernelCount)
	for i := range ks {
		ks[i] = Kernel(i)
	}
	return ks
}

// Source returns the complete WGSL module for k: the shared transfer
// functions followed by the kernel's entry point, named "main".
func Source(k Kernel) (string, error) {
	if k >= kernelCount {
		return "", fmt.Errorf("shader: unknown kernel %d", k)
	}
	common, err := shaderFS.ReadFile("shaders/common.wgsl")
	if err != nil {
		return "", fmt.Errorf("shader: read common: %w", err)
	}
	entry, err := shaderFS.ReadFile("shaders/" + kernelFiles[k] + ".wgsl")
	if err != nil {
		return "", fmt.Errorf("shader: read %s: %w", k, err)
	}
	return string(common) + "\n" + string(entry), nil
}

// CompileSPIRV compiles the WGSL source of k to SPIR-V words.
func CompileSPIRV(k Kernel) ([]uint32, error) {
	src, err := Source(k)
	if err != nil {
		return nil, err
	}

	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", k, err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return spirvCode, nil
}

// Workgroups returns the number of workgroups to dispatch for pixelCount
// pixels.
func Workgroups(pixelCount int) uint32 {
	if pixelCount <= 0 {
		return 0
	}
	//nolint:gosec // G115: pixelCount is positive and bounded by a buffer length
	return uint32((pixelCount + WorkgroupSize - 1) / WorkgroupSize)
}

// EncodeParams returns the Params uniform contents for pixelCount pixels.
func EncodeParams(pixelCount uint32) []byte {
	buf := make([]byte, ParamsSize)
	binary.LittleEndian.PutUint32(buf, pixelCount)
	return buf
}
