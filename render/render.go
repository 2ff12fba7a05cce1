// Package render fills grayscale pixel buffers with escape-time
// values, splitting the image into horizontal bands that are rendered
// in parallel.
package render

import (
	"sync"

	"github.com/mandelgray/mandel"
)

// Limit is the escape iteration bound. Escaped pixels store 255-i, so
// the whole escape range fits in one byte.
const Limit = 255

// DefaultWorkers is the band count used when a caller passes a
// non-positive worker count.
const DefaultWorkers = 8

// Fill renders one band: every pixel of bounds is mapped onto plane
// and colored by escape time. Points that never escape render as 0;
// a point escaping at iteration i renders as 255-i, so fast escapes
// are bright and the gradient darkens toward the set boundary.
//
// pixels must hold exactly bounds.Width*bounds.Height bytes; Fill
// panics otherwise. The partition layer always constructs consistent
// bands, so a mismatch is a programming error, not bad input.
func Fill(pixels []byte, bounds mandel.Bounds, plane mandel.Plane) {
	if len(pixels) != bounds.Pixels() {
		panic("render: pixel buffer length does not match bounds")
	}

	for row := 0; row < bounds.Height; row++ {
		for col := 0; col < bounds.Width; col++ {
			pt := mandel.PixelToPoint(bounds, col, row, plane)
			var v byte
			if i, escaped := mandel.EscapeTime(pt, Limit); escaped {
				v = byte(255 - i)
			}
			pixels[row*bounds.Width+col] = v
		}
	}
}

// Band is one horizontal slice of the output image: its row range in
// the full image plus the plane corners covering exactly those rows.
type Band struct {
	Top    int           // first row in the full image
	Bounds mandel.Bounds // full image width, band height
	Plane  mandel.Plane
}

// Split partitions bounds into row-contiguous bands of at most
// ceil(height/workers) rows; the last band may be shorter. Band plane
// corners are derived from the full image bounds, never band-local
// ones, so adjacent bands tile plane without gaps or overlaps.
func Split(bounds mandel.Bounds, plane mandel.Plane, workers int) []Band {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	rowsPerBand := (bounds.Height + workers - 1) / workers

	bands := make([]Band, 0, workers)
	for top := 0; top < bounds.Height; top += rowsPerBand {
		height := rowsPerBand
		if top+height > bounds.Height {
			height = bounds.Height - top
		}
		bands = append(bands, Band{
			Top:    top,
			Bounds: mandel.Bounds{Width: bounds.Width, Height: height},
			Plane: mandel.Plane{
				TopLeft:     mandel.PixelToPoint(bounds, 0, top, plane),
				BottomRight: mandel.PixelToPoint(bounds, bounds.Width, top+height, plane),
			},
		})
	}
	return bands
}

// Parallel renders bounds over plane into a freshly allocated
// row-major grayscale buffer, one goroutine per band. Every goroutine
// owns a disjoint sub-slice of the buffer, so the writes need no
// locking. Parallel returns only after all bands are written; pixel
// values are independent of scheduling order.
func Parallel(bounds mandel.Bounds, plane mandel.Plane, workers int) []byte {
	pixels := make([]byte, bounds.Pixels())

	var wg sync.WaitGroup
	for _, band := range Split(bounds, plane, workers) {
		start := band.Top * bounds.Width
		slice := pixels[start : start+band.Bounds.Pixels()]

		wg.Add(1)
		go func() {
			defer wg.Done()
			Fill(slice, band.Bounds, band.Plane)
		}()
	}
	wg.Wait()

	return pixels
}
