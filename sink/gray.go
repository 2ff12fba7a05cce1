package sink

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/mandelgray/mandel"
)

// Raw grayscale dump: a fixed header followed by one zstd frame of
// row-major pixel bytes. Header: magic(4) + width(uint32 BE) +
// height(uint32 BE).
const grayMagic = "MGZ1"

// ErrInvalidMagic reports that a reader did not start with the raw
// grayscale dump magic.
var ErrInvalidMagic = errors.New("sink: invalid gray dump magic")

// GrayZstdEncoder writes the raw zstd-compressed grayscale format.
type GrayZstdEncoder struct{}

func (GrayZstdEncoder) Encode(w io.Writer, pixels []byte, bounds mandel.Bounds) error {
	if len(pixels) != bounds.Pixels() {
		return fmt.Errorf("sink: buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Pixels())
	}

	if _, err := io.WriteString(w, grayMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(bounds.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(bounds.Height)); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := zw.Write(pixels); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadGray decodes a raw grayscale dump produced by GrayZstdEncoder.
func ReadGray(r io.Reader) ([]byte, mandel.Bounds, error) {
	magic := make([]byte, len(grayMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, mandel.Bounds{}, fmt.Errorf("sink: read magic: %w", err)
	}
	if string(magic) != grayMagic {
		return nil, mandel.Bounds{}, ErrInvalidMagic
	}

	var width, height uint32
	if err := binary.Read(r, binary.BigEndian, &width); err != nil {
		return nil, mandel.Bounds{}, fmt.Errorf("sink: read width: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &height); err != nil {
		return nil, mandel.Bounds{}, fmt.Errorf("sink: read height: %w", err)
	}
	bounds := mandel.Bounds{Width: int(width), Height: int(height)}
	if bounds.Width < 1 || bounds.Height < 1 {
		return nil, mandel.Bounds{}, fmt.Errorf("sink: invalid dimensions %dx%d", width, height)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, mandel.Bounds{}, err
	}
	defer zr.Close()

	pixels := make([]byte, bounds.Pixels())
	if _, err := io.ReadFull(zr, pixels); err != nil {
		return nil, mandel.Bounds{}, fmt.Errorf("sink: read pixels: %w", err)
	}
	return pixels, bounds, nil
}
