package slider2d

import "math"

// magnetStops are the normalized lattice coordinates along each axis.
var magnetStops = [...]float64{-1, -0.5, 0, 0.5, 1}

// MagnetCount is the number of snap candidates of a grid.
const MagnetCount = len(magnetStops) * len(magnetStops)

// SnapGrid holds the 5x5 lattice of magnets spanning a canvas from edge to edge,
// centered at the canvas center. The lattice is cached and rebuilt only when
// the extent changes.
type SnapGrid struct {
	extent  Extent
	magnets []Point
}

// NewSnapGrid returns the snap grid of a canvas of size e.
func NewSnapGrid(e Extent) *SnapGrid {
	g := &SnapGrid{}
	g.Resize(e)
	return g
}

// Resize rebuilds the lattice for a new canvas extent.
func (g *SnapGrid) Resize(e Extent) {
	if g.magnets != nil && e == g.extent {
		return
	}
	g.extent = e
	g.magnets = g.magnets[:0]

	// x is the outer loop, y the inner one. The order decides the tie-breaks.
	for _, nx := range magnetStops {
		for _, ny := range magnetStops {
			g.magnets = append(g.magnets, Point{
				X: nx * e.Width / 2,
				Y: ny * e.Height / 2,
			})
		}
	}
}

// Extent returns the canvas extent the grid was built for.
func (g *SnapGrid) Extent() Extent {
	return g.extent
}

// Candidates returns a copy of the magnets in enumeration order.
func (g *SnapGrid) Candidates() []Point {
	return append([]Point(nil), g.magnets...)
}

// Nearest returns the magnet closest to p. On equal distances the magnet
// enumerated first wins.
func (g *SnapGrid) Nearest(p Point) Point {
	var (
		closest Point
		minDist = math.MaxFloat64
	)
	for _, m := range g.magnets {
		if d := m.Distance(p); d < minDist {
			closest = m
			minDist = d
		}
	}
	return closest
}

// Magnets returns the lattice of a canvas of size e.
func Magnets(e Extent) []Point {
	return NewSnapGrid(e).magnets
}

// Closest returns the magnet of a canvas of size e nearest to p.
func Closest(p Point, e Extent) Point {
	return NewSnapGrid(e).Nearest(p)
}
