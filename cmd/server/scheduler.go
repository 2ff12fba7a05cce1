package main

import (
	"context"
	"log"
	"sync"

	"github.com/mandelgray/mandel"
	"github.com/mandelgray/mandel/render"
)

// bandScheduler renders one plane rectangle band by band and fans the
// finished bands out to any number of subscribers. Late subscribers
// first receive every band finished so far, so a browser opened
// mid-render still ends up with the full picture.
type bandScheduler struct {
	bounds mandel.Bounds
	plane  mandel.Plane
	bands  []render.Band

	ctx       context.Context
	ctxCancel context.CancelFunc

	m        sync.Mutex
	pixels   []byte
	finished []render.Band // completion order
	subs     map[chan render.Band]struct{}
	done     bool
}

func newBandScheduler(bounds mandel.Bounds, plane mandel.Plane, workers int) *bandScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &bandScheduler{
		bounds:    bounds,
		plane:     plane,
		bands:     render.Split(bounds, plane, workers),
		pixels:    make([]byte, bounds.Pixels()),
		subs:      make(map[chan render.Band]struct{}),
		ctx:       ctx,
		ctxCancel: cancel,
	}
}

// run renders every band, one goroutine per band, each writing its own
// disjoint sub-slice of the shared pixel buffer. The scheduler context
// is cancelled once the whole image is rendered.
func (s *bandScheduler) run() {
	var wg sync.WaitGroup
	for _, band := range s.bands {
		start := band.Top * s.bounds.Width
		slice := s.pixels[start : start+band.Bounds.Pixels()]

		wg.Add(1)
		go func() {
			defer wg.Done()
			render.Fill(slice, band.Bounds, band.Plane)
			s.bandFinished(band)
		}()
	}
	wg.Wait()

	s.m.Lock()
	s.done = true
	for ch := range s.subs {
		close(ch)
	}
	clear(s.subs)
	s.m.Unlock()

	s.ctxCancel()
	log.Printf("render complete: %dx%d, %d bands", s.bounds.Width, s.bounds.Height, len(s.bands))
}

func (s *bandScheduler) bandFinished(band render.Band) {
	s.m.Lock()
	s.finished = append(s.finished, band)
	for ch := range s.subs {
		ch <- band
	}
	frac := float64(len(s.finished)) / float64(len(s.bands))
	s.m.Unlock()

	log.Printf("finished: %.2f", frac)
}

// subscribe returns a channel carrying every finished band, starting
// with the ones already done. The channel is buffered for the full
// band count, so scheduler sends never block on slow subscribers. It
// is closed once the render is complete; the returned func drops the
// subscription early.
func (s *bandScheduler) subscribe() (<-chan render.Band, func()) {
	ch := make(chan render.Band, len(s.bands))

	s.m.Lock()
	for _, band := range s.finished {
		ch <- band
	}
	if s.done {
		close(ch)
	} else {
		s.subs[ch] = struct{}{}
	}
	s.m.Unlock()

	return ch, func() {
		s.m.Lock()
		delete(s.subs, ch)
		s.m.Unlock()
	}
}

// bandPixels copies one finished band out of the shared buffer. The
// band's sub-slice is stable once its render goroutine has finished.
func (s *bandScheduler) bandPixels(band render.Band) []byte {
	start := band.Top * s.bounds.Width
	out := make([]byte, band.Bounds.Pixels())
	copy(out, s.pixels[start:start+len(out)])
	return out
}
