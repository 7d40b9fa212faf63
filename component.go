package colortransform

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// Component is the unsigned integer type of one packed channel. Its
// maximum value defines the quantization range: 255 for uint8, 65535 for
// uint16 and so on.
type Component interface {
	uint8 | uint16 | uint32
}

// maxValue returns the largest value of T.
func maxValue[T constraints.Unsigned]() T {
	return ^T(0)
}

// componentSize returns the width of T in bytes.
func componentSize[T Component]() int {
	switch uint64(maxValue[T]()) {
	case math.MaxUint8:
		return 1
	case math.MaxUint16:
		return 2
	default:
		return 4
	}
}

// quantize scales v by the maximum of T and truncates toward zero.
//
// The product is formed in float32 like the rest of the pipeline. For
// 32-bit components float32 cannot hold the maximum, so the product is
// formed in float64 to stay in range.
func quantize[T Component](v float32) T {
	m := maxValue[T]()
	if uint64(m) > math.MaxUint16 {
		return T(float64(v) * float64(m))
	}
	return T(v * float32(m))
}

// loadComponent reads one little-endian component from the start of b.
func loadComponent[T Component](b []byte) T {
	switch componentSize[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	default:
		return T(binary.LittleEndian.Uint32(b))
	}
}

// PackBytes serializes packed components as little-endian bytes, the layout
// the import functions read.
func PackBytes[T Component](px []T) []byte {
	size := componentSize[T]()
	out := make([]byte, len(px)*size)
	switch size {
	case 1:
		for i, v := range px {
			out[i] = byte(v)
		}
	case 2:
		for i, v := range px {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
		}
	default:
		for i, v := range px {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
	}
	return out
}

// identityProc converts a component to float32 without further decoding.
func identityProc[T Component](v T) float32 {
	return float32(v)
}
