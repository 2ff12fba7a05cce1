package mandel

// Classic regions / landmarks in the Mandelbrot set, expressed as the
// corner pairs the renderer consumes. The cmd/mandel binary accepts
// them by name in place of explicit corners.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Plane{
		TopLeft:     complex(-0.8, 0.15),
		BottomRight: complex(-0.7, 0.05),
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Plane{
		TopLeft:     complex(-1.85, -0.02),
		BottomRight: complex(-1.75, -0.10),
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Plane{
		TopLeft:     complex(-0.7435, 0.1325),
		BottomRight: complex(-0.7420, 0.1310),
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Plane{
		TopLeft:     complex(-0.7480, 0.0980),
		BottomRight: complex(-0.7450, 0.0950),
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Plane{
		TopLeft:     complex(-0.7400, 0.1850),
		BottomRight: complex(-0.7350, 0.1800),
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Plane{
		TopLeft:     complex(-1.7390, -0.0220),
		BottomRight: complex(-1.7375, -0.0235),
	}

	// The full set with a little margin around the radius-2 disc
	FullSet = Plane{
		TopLeft:     complex(-2.5, 1.25),
		BottomRight: complex(1.0, -1.25),
	}
)

// Regions maps the landmark names accepted on the command line to
// their plane rectangles.
var Regions = map[string]Plane{
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
	"full-set":                FullSet,
}
