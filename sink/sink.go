// Package sink serializes finished grayscale pixel buffers to raster
// files. The renderer hands over a row-major byte buffer plus its
// dimensions; everything about container formats lives here. The
// output format is chosen by file extension.
package sink

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/mandelgray/mandel"
)

// Encoder writes one single-channel 8-bit image to w.
type Encoder interface {
	Encode(w io.Writer, pixels []byte, bounds mandel.Bounds) error
}

// ByExtension picks the encoder for an output path. Supported:
// .png, .bmp, .tif/.tiff and .zst (raw zstd-compressed gray dump).
func ByExtension(path string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return pngEncoder{}, nil
	case ".bmp":
		return bmpEncoder{}, nil
	case ".tif", ".tiff":
		return tiffEncoder{}, nil
	case ".zst":
		return GrayZstdEncoder{}, nil
	default:
		return nil, fmt.Errorf("sink: unsupported output extension in %q", path)
	}
}

// WriteFile encodes pixels into the format implied by path's extension
// and writes the result to a new file at path.
func WriteFile(path string, pixels []byte, bounds mandel.Bounds) error {
	enc, err := ByExtension(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sink: create %q: %w", path, err)
	}
	defer f.Close()

	if err := enc.Encode(f, pixels, bounds); err != nil {
		return fmt.Errorf("sink: encode %q: %w", path, err)
	}
	return f.Close()
}

// GrayImage wraps a row-major grayscale buffer as an image.Gray
// without copying. The buffer must hold exactly bounds.Pixels() bytes.
func GrayImage(pixels []byte, bounds mandel.Bounds) (*image.Gray, error) {
	if len(pixels) != bounds.Pixels() {
		return nil, fmt.Errorf("sink: buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Pixels())
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: bounds.Width,
		Rect:   image.Rect(0, 0, bounds.Width, bounds.Height),
	}, nil
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, pixels []byte, bounds mandel.Bounds) error {
	img, err := GrayImage(pixels, bounds)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, pixels []byte, bounds mandel.Bounds) error {
	img, err := GrayImage(pixels, bounds)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, pixels []byte, bounds mandel.Bounds) error {
	img, err := GrayImage(pixels, bounds)
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
