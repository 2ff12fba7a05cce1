package render

import (
	"bytes"
	"testing"

	"github.com/mandelgray/mandel"
)

var testPlane = mandel.Plane{
	TopLeft:     complex(-1, 1),
	BottomRight: complex(1, -1),
}

func TestSplitCoversEveryRowOnce(t *testing.T) {
	tests := []struct {
		height  int
		workers int
	}{
		{height: 1, workers: 1},
		{height: 1, workers: 8},
		{height: 7, workers: 3},
		{height: 100, workers: 8},
		{height: 750, workers: 8},
		{height: 64, workers: 64},
		{height: 5, workers: 16},
	}
	for _, tt := range tests {
		bounds := mandel.Bounds{Width: 10, Height: tt.height}
		bands := Split(bounds, testPlane, tt.workers)

		rowsPerBand := (tt.height + tt.workers - 1) / tt.workers
		wantBands := (tt.height + rowsPerBand - 1) / rowsPerBand
		if len(bands) != wantBands {
			t.Errorf("height=%d workers=%d: got %d bands, want %d",
				tt.height, tt.workers, len(bands), wantBands)
		}

		covered := make([]int, tt.height)
		next := 0
		for _, band := range bands {
			if band.Top != next {
				t.Errorf("height=%d workers=%d: band starts at row %d, want %d",
					tt.height, tt.workers, band.Top, next)
			}
			if band.Bounds.Width != bounds.Width {
				t.Errorf("band at row %d has width %d, want %d",
					band.Top, band.Bounds.Width, bounds.Width)
			}
			for r := band.Top; r < band.Top+band.Bounds.Height; r++ {
				covered[r]++
			}
			next = band.Top + band.Bounds.Height
		}
		for r, n := range covered {
			if n != 1 {
				t.Errorf("height=%d workers=%d: row %d covered %d times",
					tt.height, tt.workers, r, n)
			}
		}
	}
}

func TestSplitBandsTilePlane(t *testing.T) {
	bounds := mandel.Bounds{Width: 100, Height: 75}
	bands := Split(bounds, testPlane, 8)

	if bands[0].Plane.TopLeft != testPlane.TopLeft {
		t.Errorf("first band top-left = %v, want %v",
			bands[0].Plane.TopLeft, testPlane.TopLeft)
	}
	last := bands[len(bands)-1]
	if last.Plane.BottomRight != testPlane.BottomRight {
		t.Errorf("last band bottom-right = %v, want %v",
			last.Plane.BottomRight, testPlane.BottomRight)
	}
	for i := 1; i < len(bands); i++ {
		prev, cur := bands[i-1], bands[i]
		if imag(prev.Plane.BottomRight) != imag(cur.Plane.TopLeft) {
			t.Errorf("band %d does not meet band %d: %v vs %v",
				i-1, i, prev.Plane.BottomRight, cur.Plane.TopLeft)
		}
	}
}

func TestFillPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Fill with short buffer did not panic")
		}
	}()
	Fill(make([]byte, 5), mandel.Bounds{Width: 10, Height: 10}, testPlane)
}

func TestParallelMatchesSequential(t *testing.T) {
	bounds := mandel.Bounds{Width: 64, Height: 48}

	sequential := make([]byte, bounds.Pixels())
	Fill(sequential, bounds, testPlane)

	for _, workers := range []int{1, 2, 7, 8, 48, 100} {
		got := Parallel(bounds, testPlane, workers)
		if !bytes.Equal(got, sequential) {
			t.Errorf("workers=%d: parallel output differs from sequential render", workers)
		}
	}
}

func TestParallelDeterministic(t *testing.T) {
	bounds := mandel.Bounds{Width: 50, Height: 37}
	a := Parallel(bounds, testPlane, 8)
	b := Parallel(bounds, testPlane, 3)
	if !bytes.Equal(a, b) {
		t.Errorf("renders with different worker counts are not byte-identical")
	}
}

func TestCenterOfSetRendersBlack(t *testing.T) {
	bounds := mandel.Bounds{Width: 100, Height: 100}
	pixels := Parallel(bounds, testPlane, 8)

	// pixel (50,50) maps to the origin, which never escapes
	if got := pixels[50*bounds.Width+50]; got != 0 {
		t.Errorf("center pixel = %d, want 0", got)
	}

	// the far corner maps near (1,-1), which escapes almost immediately
	if got := pixels[99*bounds.Width+99]; got == 0 {
		t.Errorf("corner pixel rendered as bounded")
	}
}

func BenchmarkParallel(b *testing.B) {
	bounds := mandel.Bounds{Width: 256, Height: 192}
	for b.Loop() {
		Parallel(bounds, testPlane, DefaultWorkers)
	}
}
