package colortransform

// MaxChannels is the largest channel count a LinearImage can hold.
const MaxChannels = 4

// LinearImage is a dense 2D buffer of float32 samples.
//
// Pixels are stored row-major, top to bottom, with the channels of a pixel
// interleaved and no padding between rows. The channel count is fixed at
// construction and uniform across all pixels.
//
// Thread safety: LinearImage is safe for concurrent read access. Writes
// (Set*, or through Data, Row and Pixel slices) require external
// synchronization.
type LinearImage struct {
	data     []float32
	width    int
	height   int
	channels int
}

// NewLinearImage creates a zeroed image with the given dimensions.
// Returns ErrInvalidDimensions if width or height is non-positive and
// ErrChannelCount if channels is outside [1, MaxChannels].
func NewLinearImage(width, height, channels int) (*LinearImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels < 1 || channels > MaxChannels {
		return nil, ErrChannelCount
	}
	return newLinearImage(width, height, channels), nil
}

// newLinearImage allocates without validation. Used by conversions whose
// arguments were already checked or are trusted.
func newLinearImage(width, height, channels int) *LinearImage {
	return &LinearImage{
		data:     make([]float32, width*height*channels),
		width:    width,
		height:   height,
		channels: channels,
	}
}

// LinearImageFromData wraps existing samples without copying.
// The caller must ensure data remains valid for the lifetime of the image.
func LinearImageFromData(data []float32, width, height, channels int) (*LinearImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels < 1 || channels > MaxChannels {
		return nil, ErrChannelCount
	}
	required := width * height * channels
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &LinearImage{
		data:     data[:required],
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// Clone creates a deep copy of the image.
func (m *LinearImage) Clone() *LinearImage {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return &LinearImage{
		data:     data,
		width:    m.width,
		height:   m.height,
		channels: m.channels,
	}
}

// Width returns the image width in pixels.
func (m *LinearImage) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *LinearImage) Height() int {
	return m.height
}

// Channels returns the number of channels per pixel.
func (m *LinearImage) Channels() int {
	return m.channels
}

// Bounds returns the image dimensions as (width, height).
func (m *LinearImage) Bounds() (int, int) {
	return m.width, m.height
}

// Data returns the raw sample slice.
func (m *LinearImage) Data() []float32 {
	return m.data
}

// Row returns the samples of row y, or nil if y is out of bounds.
func (m *LinearImage) Row(y int) []float32 {
	if y < 0 || y >= m.height {
		return nil
	}
	stride := m.width * m.channels
	start := y * stride
	return m.data[start : start+stride]
}

// PixelOffset returns the index of the first channel of pixel (x, y) in
// Data, or -1 if the coordinates are out of bounds.
func (m *LinearImage) PixelOffset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return -1
	}
	return (y*m.width + x) * m.channels
}

// Pixel returns the channels of pixel (x, y) as a slice into the image.
// Writes through the slice modify the image. Returns nil if the coordinates
// are out of bounds.
func (m *LinearImage) Pixel(x, y int) []float32 {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return nil
	}
	return m.data[off : off+m.channels]
}

// Float3At returns the first three channels of pixel (x, y). Missing
// channels and out-of-bounds pixels read as zero.
func (m *LinearImage) Float3At(x, y int) Float3 {
	var c Float3
	copy(c[:], m.Pixel(x, y))
	return c
}

// Float4At returns the first four channels of pixel (x, y). Missing
// channels and out-of-bounds pixels read as zero.
func (m *LinearImage) Float4At(x, y int) Float4 {
	var c Float4
	copy(c[:], m.Pixel(x, y))
	return c
}

// SetFloat3 stores c into the first channels of pixel (x, y), truncated to
// the image's channel count. Returns false if the pixel is out of bounds.
func (m *LinearImage) SetFloat3(x, y int, c Float3) bool {
	p := m.Pixel(x, y)
	if p == nil {
		return false
	}
	copy(p, c[:])
	return true
}

// SetFloat4 stores c into the first channels of pixel (x, y), truncated to
// the image's channel count. Returns false if the pixel is out of bounds.
func (m *LinearImage) SetFloat4(x, y int, c Float4) bool {
	p := m.Pixel(x, y)
	if p == nil {
		return false
	}
	copy(p, c[:])
	return true
}

// Fill sets every channel of every pixel to v.
func (m *LinearImage) Fill(v float32) {
	for i := range m.data {
		m.data[i] = v
	}
}
