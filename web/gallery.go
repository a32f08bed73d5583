package web

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// Gallery keeps rendered charts in memory so the web server can show them.
// It implements chart.Surface.
type Gallery struct {
	mu     sync.RWMutex
	clock  clock.Clock
	charts []GalleryChart
	index  map[string]int
}

type GalleryChart struct {
	Name    string
	Title   string
	SVG     []byte
	Created time.Time
}

func NewGallery(clock clock.Clock) *Gallery {
	return &Gallery{
		clock: clock,
		index: make(map[string]int),
	}
}

// Show adds the chart to the gallery. Showing a chart with a name that is
// already present replaces it in place.
func (g *Gallery) Show(name, title string, svg []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := GalleryChart{Name: name, Title: title, SVG: svg, Created: g.clock.Now().UTC()}
	if i, found := g.index[name]; found {
		g.charts[i] = c
		return nil
	}
	g.index[name] = len(g.charts)
	g.charts = append(g.charts, c)
	return nil
}

// Charts returns the charts in the order they were first shown.
func (g *Gallery) Charts() []GalleryChart {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]GalleryChart, len(g.charts))
	copy(res, g.charts)
	return res
}

func (g *Gallery) Get(name string) (GalleryChart, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, found := g.index[name]
	if !found {
		return GalleryChart{}, false
	}
	return g.charts[i], true
}
