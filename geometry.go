package slider2d

import (
	"fmt"
	"math"

	"github.com/esimov/slider2d/utils"
)

// Point is a 2D coordinate. Depending on the context it is expressed in canvas
// (view) space, in offset space relative to the canvas center, or in the
// virtual output space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Extent is the size of a rectangular area.
type Extent struct {
	Width, Height float64
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Ext is a shorthand for Extent{Width: w, Height: h}.
func Ext(w, h float64) Extent {
	return Extent{Width: w, Height: h}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddExtent returns p translated by the width and height of e.
func (p Point) AddExtent(e Extent) Point {
	return Point{X: p.X + e.Width, Y: p.Y + e.Height}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubExtent returns p translated by minus the width and height of e.
func (p Point) SubExtent(e Extent) Point {
	return Point{X: p.X - e.Width, Y: p.Y - e.Height}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// MulComponents multiplies p with q component by component.
func (p Point) MulComponents(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Clamp limits each axis of p to [-dim/2, +dim/2] of the extent e,
// that is, to the rectangle of size e centered at the origin.
func (p Point) Clamp(e Extent) Point {
	hw, hh := e.Width/2, e.Height/2
	return Point{
		X: utils.Clamp(p.X, -hw, hw),
		Y: utils.Clamp(p.Y, -hh, hh),
	}
}

// In reports whether p lies inside the rectangle of size e centered at the origin.
func (p Point) In(e Extent) bool {
	return p == p.Clamp(e)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Center returns the middle of an area of size e whose top-left corner is the origin.
func (e Extent) Center() Point {
	return Point{X: e.Width / 2, Y: e.Height / 2}
}

// Mul returns e scaled by s.
func (e Extent) Mul(s float64) Extent {
	return Extent{Width: e.Width * s, Height: e.Height * s}
}

// Div returns e divided by s.
func (e Extent) Div(s float64) Extent {
	return Extent{Width: e.Width / s, Height: e.Height / s}
}

// Ratio returns the per axis ratio between e and the reference extent ref.
func (e Extent) Ratio(ref Extent) Point {
	return Point{X: e.Width / ref.Width, Y: e.Height / ref.Height}
}

// Valid reports whether both sides of e are strictly positive finite numbers.
func (e Extent) Valid() bool {
	return e.Width > 0 && e.Height > 0 &&
		!math.IsInf(e.Width, 0) && !math.IsInf(e.Height, 0)
}

func (e Extent) String() string {
	return fmt.Sprintf("%.2fx%.2f", e.Width, e.Height)
}
