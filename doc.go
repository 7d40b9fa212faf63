// Package colortransform converts color samples and image buffers between
// linear light and the encodings used to store them.
//
// # Overview
//
// Rendering math wants linear light in float32. Storage and display want
// compact integers in an encoding that spends its precision where the eye
// or the dynamic range needs it. This package provides the transfer
// functions between the two and bulk converters that apply them to whole
// images.
//
// # Quick Start
//
//	import "github.com/gogpu/colortransform"
//
//	// Decode an 8-bit sRGB buffer into linear light.
//	img, err := colortransform.ToLinearFromSRGB8(w, h, w*3, pixels)
//
//	// ... operate on img.Data() ...
//
//	// Encode back for display, or pack for HDR storage.
//	srgb, err := colortransform.FromLinearToSRGB[uint8](img)
//	rgbm, err := colortransform.FromLinearToRGBM[uint8](img)
//
// # Encodings
//
// sRGB is the IEC 61966-2-1 curve: a linear segment near black and a 2.4
// power law above it. RGBM stores HDR RGB in [0, 16] as four [0, 1]
// channels: square-root encoded RGB divided by a shared multiplier M kept
// in the fourth channel. Gray and RGB exports apply no curve.
//
// Exports clamp to [0, 1], scale by the maximum of the component type and
// truncate. Because the sRGB curve evaluates to just below 1 at 1, linear
// white exports to 254 in 8 bits.
//
// # Buffers
//
//   - LinearImage: float32 samples, row-major, 1 to 4 interleaved channels
//   - Packed output: []uint8, []uint16 or []uint32, tightly packed
//   - Packed input: raw little-endian bytes with a caller-supplied stride
//
// # Preconditions
//
// Bulk conversions trust their arguments unless strict mode is on, through
// WithStrict or the colortransform_strict build tag. In strict mode a bad
// stride, short buffer or wrong channel count returns an error wrapping one
// of the Err* sentinels.
//
// # Concurrency
//
// Conversions are pure functions of their inputs. Pass WithPool to split a
// conversion into row bands over a shared worker pool; the output is
// identical to a serial run.
//
// # GPU
//
// TextureFormat maps packed layouts to gputypes texture formats, and the
// shader subpackage carries WGSL versions of the transfer functions.
package colortransform

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
