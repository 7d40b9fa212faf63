package colortransform

import "fmt"

// ToLinear constructs a 3-channel LinearImage from an untyped data blob.
//
// src holds height rows of width pixels, three little-endian components of
// type T per pixel. Row y starts at byte y*bytesPerRow, so rows may carry
// padding past width*3 components; the padding is skipped. The output is
// tightly packed.
//
// The proc function converts a single component into a float; nil means
// float32(v). The result is divided by the maximum of T, then transform
// performs an arbitrary float-to-float transformation such as
// SRGBToLinear3; nil means identity.
func ToLinear[T Component](width, height, bytesPerRow int, src []byte,
	proc func(T) float32, transform func(Float3) Float3, opts ...Option) (*LinearImage, error) {
	o := buildOptions(opts)
	if err := checkImport[T](&o, "ToLinear", width, height, bytesPerRow, 3, len(src)); err != nil {
		return nil, err
	}
	if proc == nil {
		proc = identityProc[T]
	}
	if transform == nil {
		transform = func(c Float3) Float3 { return c }
	}

	size := componentSize[T]()
	scale := float32(maxValue[T]())
	result := newLinearImage(width, height, 3)

	o.rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			p := src[y*bytesPerRow:]
			d := result.data[y*width*3:]
			for x := 0; x < width; x++ {
				c := Float3{
					proc(loadComponent[T](p)),
					proc(loadComponent[T](p[size:])),
					proc(loadComponent[T](p[2*size:])),
				}
				c = transform(c.DivScalar(scale))
				d[0], d[1], d[2] = c[0], c[1], c[2]
				p = p[3*size:]
				d = d[3:]
			}
		}
	})
	return result, nil
}

// ToLinearWithAlpha constructs a 4-channel LinearImage from an untyped data
// blob. It behaves like ToLinear with four components per pixel: all four,
// alpha included, go through proc and the division by the maximum of T
// before transform sees the sample.
func ToLinearWithAlpha[T Component](width, height, bytesPerRow int, src []byte,
	proc func(T) float32, transform func(Float4) Float4, opts ...Option) (*LinearImage, error) {
	o := buildOptions(opts)
	if err := checkImport[T](&o, "ToLinearWithAlpha", width, height, bytesPerRow, 4, len(src)); err != nil {
		return nil, err
	}
	if proc == nil {
		proc = identityProc[T]
	}
	if transform == nil {
		transform = func(c Float4) Float4 { return c }
	}

	size := componentSize[T]()
	scale := float32(maxValue[T]())
	result := newLinearImage(width, height, 4)

	o.rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			p := src[y*bytesPerRow:]
			d := result.data[y*width*4:]
			for x := 0; x < width; x++ {
				c := Float4{
					proc(loadComponent[T](p)),
					proc(loadComponent[T](p[size:])),
					proc(loadComponent[T](p[2*size:])),
					proc(loadComponent[T](p[3*size:])),
				}
				c = transform(c.DivScalar(scale))
				d[0], d[1], d[2], d[3] = c[0], c[1], c[2], c[3]
				p = p[4*size:]
				d = d[4:]
			}
		}
	})
	return result, nil
}

// ToLinearFromSRGB8 constructs a 3-channel LinearImage from 8-bit sRGB
// data. It uses the sRGB8 lookup table and returns exactly what
// ToLinear[uint8](width, height, bytesPerRow, src, nil, SRGBToLinear3)
// would.
func ToLinearFromSRGB8(width, height, bytesPerRow int, src []byte, opts ...Option) (*LinearImage, error) {
	o := buildOptions(opts)
	if err := checkImport[uint8](&o, "ToLinearFromSRGB8", width, height, bytesPerRow, 3, len(src)); err != nil {
		return nil, err
	}

	result := newLinearImage(width, height, 3)
	o.rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := src[y*bytesPerRow : y*bytesPerRow+width*3]
			d := result.data[y*width*3 : (y+1)*width*3]
			for i, v := range row {
				d[i] = SRGB8ToLinear(v)
			}
		}
	})
	return result, nil
}

// ToLinearFromRGBM constructs a 3-channel LinearImage from RGBM samples.
// src holds width*height normalized samples, row-major; each is decoded
// with RGBMToLinear.
func ToLinearFromRGBM(src []Float4, width, height int, opts ...Option) (*LinearImage, error) {
	o := buildOptions(opts)
	if o.strict {
		var err error
		switch {
		case width <= 0 || height <= 0:
			err = fmt.Errorf("ToLinearFromRGBM: %dx%d: %w", width, height, ErrInvalidDimensions)
		case len(src) < width*height:
			err = fmt.Errorf("ToLinearFromRGBM: %d samples for %dx%d: %w",
				len(src), width, height, ErrDataTooSmall)
		}
		if err := o.report("ToLinearFromRGBM", err); err != nil {
			return nil, err
		}
	}

	result := newLinearImage(width, height, 3)
	o.rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			l := RGBMToLinear(src[i])
			result.data[i*3], result.data[i*3+1], result.data[i*3+2] = l[0], l[1], l[2]
		}
	})
	return result, nil
}

// DecodeRGBM unpacks 4-component RGBM integers into normalized samples for
// ToLinearFromRGBM. Each component is divided by the maximum of T; rows
// follow the same bytesPerRow layout as ToLinearWithAlpha.
func DecodeRGBM[T Component](width, height, bytesPerRow int, src []byte, opts ...Option) ([]Float4, error) {
	o := buildOptions(opts)
	if err := checkImport[T](&o, "DecodeRGBM", width, height, bytesPerRow, 4, len(src)); err != nil {
		return nil, err
	}

	size := componentSize[T]()
	scale := float32(maxValue[T]())
	out := make([]Float4, width*height)

	o.rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			p := src[y*bytesPerRow:]
			for x := 0; x < width; x++ {
				out[y*width+x] = Float4{
					float32(loadComponent[T](p)),
					float32(loadComponent[T](p[size:])),
					float32(loadComponent[T](p[2*size:])),
					float32(loadComponent[T](p[3*size:])),
				}.DivScalar(scale)
				p = p[4*size:]
			}
		}
	})
	return out, nil
}

// checkImport validates the geometry of a packed source in strict mode.
func checkImport[T Component](o *options, op string, width, height, bytesPerRow, channels, n int) error {
	if !o.strict {
		return nil
	}
	rowBytes := width * channels * componentSize[T]()
	var err error
	switch {
	case width <= 0 || height <= 0:
		err = fmt.Errorf("%s: %dx%d: %w", op, width, height, ErrInvalidDimensions)
	case bytesPerRow < rowBytes:
		err = fmt.Errorf("%s: %d bytes per row, need %d: %w", op, bytesPerRow, rowBytes, ErrInvalidStride)
	case n < (height-1)*bytesPerRow+rowBytes:
		err = fmt.Errorf("%s: %d bytes, need %d: %w",
			op, n, (height-1)*bytesPerRow+rowBytes, ErrDataTooSmall)
	}
	return o.report(op, err)
}
