package mandel

import "testing"

func TestEscapeTime(t *testing.T) {
	// limit 0: the loop never runs, so even far-out points report bounded
	if _, escaped := EscapeTime(complex(10, 10), 0); escaped {
		t.Errorf("EscapeTime with limit 0 reported an escape")
	}

	// the origin is in the set for any limit
	if _, escaped := EscapeTime(0, 1000); escaped {
		t.Errorf("EscapeTime(0, 1000) reported an escape")
	}

	// z = 0*0 + 3 already has |z| > 2 after the first step
	i, escaped := EscapeTime(complex(3, 0), 255)
	if !escaped || i != 0 {
		t.Errorf("EscapeTime(3, 255) = (%d, %t), want (0, true)", i, escaped)
	}

	// c = -1 cycles between -1 and 0 forever
	if _, escaped := EscapeTime(complex(-1, 0), 255); escaped {
		t.Errorf("EscapeTime(-1, 255) reported an escape")
	}
}

func TestNormSqr(t *testing.T) {
	if got := NormSqr(complex(3, 4)); got != 25 {
		t.Errorf("NormSqr(3+4i) = %v, want 25", got)
	}
}

func TestPixelToPoint(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 100}
	plane := Plane{TopLeft: complex(-1, 1), BottomRight: complex(1, -1)}

	if got := PixelToPoint(bounds, 25, 75, plane); got != complex(-0.5, -0.5) {
		t.Errorf("PixelToPoint(25, 75) = %v, want (-0.5-0.5i)", got)
	}

	// corner exactness: band boundary derivation depends on these
	if got := PixelToPoint(bounds, 0, 0, plane); got != plane.TopLeft {
		t.Errorf("PixelToPoint(0, 0) = %v, want %v", got, plane.TopLeft)
	}
	if got := PixelToPoint(bounds, bounds.Width, bounds.Height, plane); got != plane.BottomRight {
		t.Errorf("PixelToPoint(width, height) = %v, want %v", got, plane.BottomRight)
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		in      string
		want    Bounds
		wantErr bool
	}{
		{in: "10x20", want: Bounds{Width: 10, Height: 20}},
		{in: "1000x750", want: Bounds{Width: 1000, Height: 750}},
		{in: "", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10x", wantErr: true},
		{in: "x20", wantErr: true},
		{in: "10x20x", wantErr: true},
		{in: "0x20", wantErr: true},
		{in: "-10x20", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBounds(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBounds(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBounds(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBounds(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in      string
		want    complex128
		wantErr bool
	}{
		{in: "1.25,-0.0625", want: complex(1.25, -0.0625)},
		{in: "-1,1", want: complex(-1, 1)},
		{in: ",1.0", wantErr: true},
		{in: "1.0,", wantErr: true},
		{in: "1.0", wantErr: true},
		{in: "1.0,2.0,3.0", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseComplex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseComplex(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseComplex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseComplex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRegionsAddressedDownward(t *testing.T) {
	for name, plane := range Regions {
		if imag(plane.TopLeft) <= imag(plane.BottomRight) {
			t.Errorf("region %q: top-left imaginary part must exceed bottom-right", name)
		}
		if real(plane.TopLeft) >= real(plane.BottomRight) {
			t.Errorf("region %q: top-left real part must be left of bottom-right", name)
		}
	}
}
