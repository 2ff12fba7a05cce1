// mandel renders a rectangle of the complex plane into a grayscale
// image file. The output format follows the file extension: .png,
// .bmp, .tif/.tiff or .zst (raw zstd-compressed gray dump).
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/mandelgray/mandel"
	"github.com/mandelgray/mandel/render"
	"github.com/mandelgray/mandel/sink"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mandel FILE PIXELS TOP_LEFT BOT_RIGHT")
	fmt.Fprintln(os.Stderr, "   or: mandel FILE PIXELS @REGION")
	fmt.Fprintf(os.Stderr, "e.g. %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "e.g. %s seahorse.png 1920x1080 @seahorse-valley\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "regions: %s\n", strings.Join(regionNames(), ", "))
	os.Exit(1)
}

func regionNames() []string {
	return slices.Sorted(maps.Keys(mandel.Regions))
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string) error {
	plot, err := parseArgs(args)
	if err != nil {
		return err
	}

	pixels := render.Parallel(plot.bounds, plot.plane, render.DefaultWorkers)

	if err := sink.WriteFile(plot.file, pixels, plot.bounds); err != nil {
		return fmt.Errorf("write %q: %w", plot.file, err)
	}

	log.Printf("wrote %dx%d image to %q", plot.bounds.Width, plot.bounds.Height, plot.file)
	return nil
}

type plotArgs struct {
	file   string
	bounds mandel.Bounds
	plane  mandel.Plane
}

// parseArgs validates the positional arguments before any rendering
// starts. A wrong argument count prints usage and exits; malformed
// values surface as errors and exit non-zero via main.
func parseArgs(args []string) (plotArgs, error) {
	regionForm := len(args) == 3 && strings.HasPrefix(args[2], "@")
	if len(args) != 4 && !regionForm {
		usage()
	}

	bounds, err := mandel.ParseBounds(args[1])
	if err != nil {
		return plotArgs{}, fmt.Errorf("parsing PIXELS: %w", err)
	}

	var plane mandel.Plane
	if regionForm {
		name := strings.TrimPrefix(args[2], "@")
		var ok bool
		if plane, ok = mandel.Regions[name]; !ok {
			return plotArgs{}, fmt.Errorf("unknown region %q (have: %s)",
				name, strings.Join(regionNames(), ", "))
		}
	} else {
		topLeft, err := mandel.ParseComplex(args[2])
		if err != nil {
			return plotArgs{}, fmt.Errorf("parsing TOP_LEFT: %w", err)
		}
		bottomRight, err := mandel.ParseComplex(args[3])
		if err != nil {
			return plotArgs{}, fmt.Errorf("parsing BOT_RIGHT: %w", err)
		}
		plane = mandel.Plane{TopLeft: topLeft, BottomRight: bottomRight}
	}

	return plotArgs{file: args[0], bounds: bounds, plane: plane}, nil
}
