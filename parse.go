package mandel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBounds parses a WIDTHxHEIGHT pixel dimension pair, e.g.
// "1000x750". Both components must be positive integers with nothing
// before, between or after them besides the single separator.
func ParseBounds(s string) (Bounds, error) {
	left, right, ok := strings.Cut(s, "x")
	if !ok {
		return Bounds{}, fmt.Errorf("bounds %q: missing %q separator", s, "x")
	}
	width, err := strconv.Atoi(left)
	if err != nil {
		return Bounds{}, fmt.Errorf("bounds %q: width: %w", s, err)
	}
	height, err := strconv.Atoi(right)
	if err != nil {
		return Bounds{}, fmt.Errorf("bounds %q: height: %w", s, err)
	}
	if width < 1 || height < 1 {
		return Bounds{}, fmt.Errorf("bounds %q: dimensions must be >= 1", s)
	}
	return Bounds{Width: width, Height: height}, nil
}

// ParseComplex parses a REAL,IMAG coordinate pair, e.g. "1.25,-0.0625".
func ParseComplex(s string) (complex128, error) {
	left, right, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("complex %q: missing %q separator", s, ",")
	}
	re, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, fmt.Errorf("complex %q: real part: %w", s, err)
	}
	im, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, fmt.Errorf("complex %q: imaginary part: %w", s, err)
	}
	return complex(re, im), nil
}
