package colortransform

import "errors"

// Precondition errors. They are only reported in strict mode; see WithStrict.
var (
	// ErrInvalidDimensions is returned when width or height is negative, or
	// when a LinearImage is created with a non-positive size.
	ErrInvalidDimensions = errors.New("colortransform: invalid dimensions")

	// ErrChannelCount is returned when an image has the wrong number of
	// channels for the requested conversion.
	ErrChannelCount = errors.New("colortransform: unsupported channel count")

	// ErrInvalidStride is returned when bytes-per-row is smaller than one
	// row of packed components.
	ErrInvalidStride = errors.New("colortransform: stride too small for width")

	// ErrDataTooSmall is returned when a source buffer is shorter than the
	// dimensions and stride require.
	ErrDataTooSmall = errors.New("colortransform: data buffer too small")

	// ErrUnknownFormat is returned for a PackedFormat outside the known set.
	ErrUnknownFormat = errors.New("colortransform: unknown packed format")
)
