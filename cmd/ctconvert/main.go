// Command ctconvert converts raw pixel buffers between packed encodings.
//
// Input and output are headerless: rows of little-endian components, one
// component type for both sides. For example, to turn an 8-bit sRGB dump
// into 8-bit RGBM:
//
//	ctconvert -w 640 -h 480 -in srgb -out rgbm -i frame.raw -o frame.rgbm
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/colortransform"
)

type config struct {
	width, height int
	bytesPerRow   int
	in            string
	out           colortransform.PackedFormat
	opts          []colortransform.Option
}

func main() {
	var (
		width   = flag.Int("w", 0, "image width in pixels")
		height  = flag.Int("h", 0, "image height in pixels")
		stride  = flag.Int("bpr", 0, "input bytes per row (0 = tightly packed)")
		bits    = flag.Int("bits", 8, "component size in bits: 8, 16 or 32")
		in      = flag.String("in", "srgb", "input encoding: rgb, srgb or rgbm")
		out     = flag.String("out", "rgb", "output layout: gray, rgb, srgb or rgbm")
		input   = flag.String("i", "-", "input file (- for stdin)")
		output  = flag.String("o", "-", "output file (- for stdout)")
		workers = flag.Int("workers", 0, "worker goroutines (0 = serial)")
		verbose = flag.Bool("v", false, "log conversion details to stderr")
	)
	flag.Parse()

	if *verbose {
		colortransform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	format, err := colortransform.ParsePackedFormat(*out)
	if err != nil {
		log.Fatalf("-out %q: %v", *out, err)
	}

	cfg := config{
		width:       *width,
		height:      *height,
		bytesPerRow: *stride,
		in:          *in,
		out:         format,
		opts:        []colortransform.Option{colortransform.WithStrict(true)},
	}
	if *workers > 0 {
		pool := colortransform.NewPool(*workers)
		defer pool.Close()
		cfg.opts = append(cfg.opts, colortransform.WithPool(pool))
	}

	src, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var dst []byte
	switch *bits {
	case 8:
		dst, err = convert[uint8](cfg, src)
	case 16:
		dst, err = convert[uint16](cfg, src)
	case 32:
		dst, err = convert[uint32](cfg, src)
	default:
		err = fmt.Errorf("-bits %d: must be 8, 16 or 32", *bits)
	}
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	if err := writeOutput(*output, dst); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// convert imports src with component type T, then exports it to cfg.out.
func convert[T colortransform.Component](cfg config, src []byte) ([]byte, error) {
	size := componentBytes[T]()

	img, err := importLinear[T](cfg, src, size)
	if err != nil {
		return nil, err
	}
	if cfg.out == colortransform.PackedGray {
		img, err = luminance(img)
		if err != nil {
			return nil, err
		}
	}

	px, err := colortransform.FromLinear[T](img, cfg.out, cfg.opts...)
	if err != nil {
		return nil, err
	}
	return colortransform.PackBytes(px), nil
}

func importLinear[T colortransform.Component](cfg config, src []byte, size int) (*colortransform.LinearImage, error) {
	w, h := cfg.width, cfg.height
	switch cfg.in {
	case "rgb":
		return colortransform.ToLinear[T](w, h, stride(cfg, 3*size), src, nil, nil, cfg.opts...)
	case "srgb":
		if size == 1 {
			return colortransform.ToLinearFromSRGB8(w, h, stride(cfg, 3), src, cfg.opts...)
		}
		return colortransform.ToLinear[T](w, h, stride(cfg, 3*size), src, nil, colortransform.SRGBToLinear3, cfg.opts...)
	case "rgbm":
		samples, err := colortransform.DecodeRGBM[T](w, h, stride(cfg, 4*size), src, cfg.opts...)
		if err != nil {
			return nil, err
		}
		return colortransform.ToLinearFromRGBM(samples, w, h, cfg.opts...)
	default:
		return nil, fmt.Errorf("-in %q: %w", cfg.in, colortransform.ErrUnknownFormat)
	}
}

// luminance collapses an RGB image to one channel with Rec. 709 weights.
func luminance(img *colortransform.LinearImage) (*colortransform.LinearImage, error) {
	w, h := img.Bounds()
	gray, err := colortransform.NewLinearImage(w, h, 1)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.Float3At(x, y)
			gray.Pixel(x, y)[0] = 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
		}
	}
	return gray, nil
}

func stride(cfg config, pixelBytes int) int {
	if cfg.bytesPerRow > 0 {
		return cfg.bytesPerRow
	}
	return cfg.width * pixelBytes
}

func componentBytes[T colortransform.Component]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o600)
}
