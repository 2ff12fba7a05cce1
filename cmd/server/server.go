// server renders one Mandelbrot landmark region and serves a viewer
// page that paints the image progressively, band by band, over a
// websocket. Clients connecting mid-render catch up with the bands
// already finished.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mandelgray/mandel"
	"github.com/mandelgray/mandel/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	pixels := flag.String("pixels", "1920x1080", "output size as WIDTHxHEIGHT")
	region := flag.String("region", "seahorse-valley", "landmark region to render")
	workers := flag.Int("workers", render.DefaultWorkers, "parallel render workers")
	flag.Parse()

	bounds, err := mandel.ParseBounds(*pixels)
	if err != nil {
		return fmt.Errorf("-pixels: %w", err)
	}
	plane, ok := mandel.Regions[*region]
	if !ok {
		names := slices.Sorted(maps.Keys(mandel.Regions))
		return fmt.Errorf("-region: unknown region %q (have: %s)", *region, strings.Join(names, ", "))
	}

	scheduler := newBandScheduler(bounds, plane, *workers)
	go scheduler.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(scheduler))
	mux.HandleFunc("/", pageHandler)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("rendering %q at %dx%d, viewer on http://localhost%s", *region, bounds.Width, bounds.Height, *addr)
	return srv.ListenAndServe()
}
