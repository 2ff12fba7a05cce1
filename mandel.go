// Package mandel holds the numeric core of a parallel grayscale
// Mandelbrot plotter: the escape-time iteration, the pixel-to-plane
// coordinate mapping and the shared geometry types. Rendering and
// file output live in the render and sink subpackages.
package mandel

// Bounds is the size of the output pixel grid.
type Bounds struct {
	Width, Height int
}

// Pixels returns the total pixel count, which is also the required
// length of a row-major grayscale buffer for these bounds.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Plane is the region of the complex plane being rasterized, given by
// two opposite corners. TopLeft carries the larger imaginary part, so
// the region is addressed the way image rows are: top to bottom.
type Plane struct {
	TopLeft     complex128
	BottomRight complex128
}

// NormSqr returns the squared modulus of z.
func NormSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// EscapeTime iterates z = z*z + c from z = 0 for at most limit steps.
// It returns the iteration at which the squared modulus of z first
// exceeded 4 (the radius-2 escape disc) and escaped == true, or
// (0, false) when z stays bounded for all limit steps.
func EscapeTime(c complex128, limit int) (iteration int, escaped bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if NormSqr(z) > 4.0 {
			return i, true
		}
	}
	return 0, false
}

// PixelToPoint maps a pixel-grid coordinate onto the plane rectangle.
// col == bounds.Width and row == bounds.Height are valid edge inputs
// and map exactly onto the right/bottom plane edge; band corner
// derivation relies on this. Bounds components must be >= 1.
func PixelToPoint(bounds Bounds, col, row int, plane Plane) complex128 {
	tl, br := plane.TopLeft, plane.BottomRight
	planeW := real(br) - real(tl)
	planeH := imag(tl) - imag(br)

	return complex(
		real(tl)+float64(col)*planeW/float64(bounds.Width),
		imag(tl)-float64(row)*planeH/float64(bounds.Height),
	)
}
