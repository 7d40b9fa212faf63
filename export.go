package colortransform

import "fmt"

// FromLinearToSRGB creates a 3-channel sRGB image from a linear image.
//
// Each pixel's first three channels are clamped to [0,1], encoded with the
// sRGB curve, scaled by the maximum of T and truncated. The source image
// can have three or more channels; only the first three are honored.
func FromLinearToSRGB[T Component](img *LinearImage, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	if err := o.checkExport("FromLinearToSRGB", img, PackedSRGB); err != nil {
		return nil, err
	}
	return exportPixels(img, 3, &o, func(src []float32, dst []T) {
		l := LinearToSRGB3(Float3{src[0], src[1], src[2]}.Saturate())
		dst[0] = quantize[T](l[0])
		dst[1] = quantize[T](l[1])
		dst[2] = quantize[T](l[2])
	}), nil
}

// FromLinearToRGB creates a 3-channel image from a linear image without a
// transfer curve: clamp to [0,1], scale, truncate.
//
// The source image can have three or more channels; only the first three
// are honored.
func FromLinearToRGB[T Component](img *LinearImage, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	if err := o.checkExport("FromLinearToRGB", img, PackedRGB); err != nil {
		return nil, err
	}
	return exportPixels(img, 3, &o, func(src []float32, dst []T) {
		dst[0] = quantize[T](Saturate(src[0]))
		dst[1] = quantize[T](Saturate(src[1]))
		dst[2] = quantize[T](Saturate(src[2]))
	}), nil
}

// FromLinearToRGBM creates a 4-channel RGBM image from a linear image.
//
// Each pixel is encoded with LinearToRGBM, scaled by the maximum of T and
// truncated. The source image can have three or more channels; only the
// first three are honored. Negative samples produce NaN before
// quantization, so their output components are unspecified.
func FromLinearToRGBM[T Component](img *LinearImage, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	if err := o.checkExport("FromLinearToRGBM", img, PackedRGBM); err != nil {
		return nil, err
	}
	return exportPixels(img, 4, &o, func(src []float32, dst []T) {
		l := LinearToRGBM(Float3{src[0], src[1], src[2]})
		dst[0] = quantize[T](l[0])
		dst[1] = quantize[T](l[1])
		dst[2] = quantize[T](l[2])
		dst[3] = quantize[T](l[3])
	}), nil
}

// FromLinearToGrayscale creates a packed single-channel image from a
// single-channel linear image. For example if T is uint8, then this maps
// [0,1] to [0,255], truncating: 0.5 becomes 127.
func FromLinearToGrayscale[T Component](img *LinearImage, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	if err := o.checkExport("FromLinearToGrayscale", img, PackedGray); err != nil {
		return nil, err
	}
	return exportPixels(img, 1, &o, func(src []float32, dst []T) {
		dst[0] = quantize[T](Saturate(src[0]))
	}), nil
}

// FromLinear exports img to the given packed format.
func FromLinear[T Component](img *LinearImage, f PackedFormat, opts ...Option) ([]T, error) {
	switch f {
	case PackedGray:
		return FromLinearToGrayscale[T](img, opts...)
	case PackedRGB:
		return FromLinearToRGB[T](img, opts...)
	case PackedSRGB:
		return FromLinearToSRGB[T](img, opts...)
	case PackedRGBM:
		return FromLinearToRGBM[T](img, opts...)
	default:
		return nil, fmt.Errorf("FromLinear: format %d: %w", f, ErrUnknownFormat)
	}
}

// exportPixels walks img and lets px write outChannels components per
// pixel into a freshly allocated, tightly packed buffer. px receives the
// source samples starting at the pixel's first channel.
func exportPixels[T Component](img *LinearImage, outChannels int, o *options, px func(src []float32, dst []T)) []T {
	w, h, c := img.width, img.height, img.channels
	dst := make([]T, w*h*outChannels)

	o.rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			s := y * w * c
			d := y * w * outChannels
			for x := 0; x < w; x, s, d = x+1, s+c, d+outChannels {
				px(img.data[s:], dst[d:d+outChannels])
			}
		}
	})
	return dst
}

// checkExport validates an export source in strict mode.
func (o *options) checkExport(op string, img *LinearImage, f PackedFormat) error {
	if !o.strict {
		return nil
	}
	var err error
	switch {
	case img == nil:
		err = fmt.Errorf("%s: nil image: %w", op, ErrInvalidDimensions)
	case img.width < 0 || img.height < 0:
		err = fmt.Errorf("%s: %dx%d: %w", op, img.width, img.height, ErrInvalidDimensions)
	case !f.AcceptsChannels(img.channels):
		err = fmt.Errorf("%s: %d channel(s) cannot produce %v: %w", op, img.channels, f, ErrChannelCount)
	case len(img.data) < img.width*img.height*img.channels:
		err = fmt.Errorf("%s: %d samples for %dx%dx%d: %w",
			op, len(img.data), img.width, img.height, img.channels, ErrDataTooSmall)
	}
	return o.report(op, err)
}

// report logs a strict-mode failure and passes err through.
func (o *options) report(op string, err error) error {
	if err != nil {
		o.logger.Warn("colortransform: precondition failed", "op", op, "err", err)
	}
	return err
}
