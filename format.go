package colortransform

import (
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colortransform/internal/color"
)

// ColorSpace identifies how the channel values of a buffer are encoded.
type ColorSpace = color.ColorSpace

// Color spaces of packed and linear buffers.
const (
	ColorSpaceLinear = color.ColorSpaceLinear
	ColorSpaceSRGB   = color.ColorSpaceSRGB
	ColorSpaceRGBM   = color.ColorSpaceRGBM
)

// PackedFormat is the layout produced by a bulk export.
type PackedFormat uint8

const (
	// PackedGray is one channel, clamp-and-scale from a single-channel image.
	PackedGray PackedFormat = iota

	// PackedRGB is three channels, clamp-and-scale without a transfer curve.
	PackedRGB

	// PackedSRGB is three channels encoded with the sRGB curve.
	PackedSRGB

	// PackedRGBM is four channels: RGBM-encoded RGB plus the multiplier.
	PackedRGBM

	// packedFormatCount is the number of formats (for internal use).
	packedFormatCount
)

// PackedFormatInfo contains metadata about a packed format.
type PackedFormatInfo struct {
	// Channels is the number of components per pixel in the output.
	Channels int

	// SourceChannels is the channel count the source image needs: exactly
	// this many for grayscale, at least this many otherwise.
	SourceChannels int

	// ExactSource is true when the source must have exactly SourceChannels.
	ExactSource bool

	// ColorSpace is the encoding of the output components.
	ColorSpace ColorSpace
}

// packedFormatTable contains metadata for each format.
var packedFormatTable = [packedFormatCount]PackedFormatInfo{
	PackedGray: {
		Channels:       1,
		SourceChannels: 1,
		ExactSource:    true,
		ColorSpace:     ColorSpaceLinear,
	},
	PackedRGB: {
		Channels:       3,
		SourceChannels: 3,
		ColorSpace:     ColorSpaceLinear,
	},
	PackedSRGB: {
		Channels:       3,
		SourceChannels: 3,
		ColorSpace:     ColorSpaceSRGB,
	},
	PackedRGBM: {
		Channels:       4,
		SourceChannels: 3,
		ColorSpace:     ColorSpaceRGBM,
	},
}

// Info returns the PackedFormatInfo for this format.
func (f PackedFormat) Info() PackedFormatInfo {
	if f >= packedFormatCount {
		return PackedFormatInfo{}
	}
	return packedFormatTable[f]
}

// Channels returns the number of output components per pixel.
func (f PackedFormat) Channels() int {
	return f.Info().Channels
}

// ColorSpace returns the encoding of the output components.
func (f PackedFormat) ColorSpace() ColorSpace {
	return f.Info().ColorSpace
}

// IsValid returns true if the format is a valid known format.
func (f PackedFormat) IsValid() bool {
	return f < packedFormatCount
}

// Len returns the number of components an export of a width x height image
// produces.
func (f PackedFormat) Len(width, height int) int {
	return width * height * f.Channels()
}

// AcceptsChannels reports whether a source image with the given channel
// count can be exported to f.
func (f PackedFormat) AcceptsChannels(channels int) bool {
	info := f.Info()
	if info.Channels == 0 {
		return false
	}
	if info.ExactSource {
		return channels == info.SourceChannels
	}
	return channels >= info.SourceChannels
}

// String returns a string representation of the format.
func (f PackedFormat) String() string {
	switch f {
	case PackedGray:
		return "Gray"
	case PackedRGB:
		return "RGB"
	case PackedSRGB:
		return "sRGB"
	case PackedRGBM:
		return "RGBM"
	default:
		return "Unknown"
	}
}

// ParsePackedFormat returns the format whose String matches name,
// ignoring case.
func ParsePackedFormat(name string) (PackedFormat, error) {
	for f := PackedFormat(0); f < packedFormatCount; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, ErrUnknownFormat
}

// TextureFormat returns the GPU texture format that can hold an export of f
// with component type T without repacking.
//
// Only 8-bit layouts with 1 or 4 channels have a direct GPU equivalent.
// RGBM is uploaded as plain RGBA8Unorm: the shader decodes the multiplier,
// so the sampler must not apply an sRGB curve. Three-channel layouts return
// TextureFormatUndefined since GPUs have no 24-bit format; callers pad to
// four channels or upload through a staging conversion.
func TextureFormat[T Component](f PackedFormat) gputypes.TextureFormat {
	if componentSize[T]() != 1 {
		return gputypes.TextureFormatUndefined
	}
	switch f {
	case PackedGray:
		return gputypes.TextureFormatR8Unorm
	case PackedRGBM:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
