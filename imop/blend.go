// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
//
// It is used by the snapshot renderer to lay the translucent slider handle
// over the canvas, the same way the interactive window does.
package imop

import (
	"fmt"

	"github.com/esimov/slider2d/utils"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
// An unsupported mode leaves the active one unchanged.
func (o *Blend) Set(opType string) error {
	bModes := []string{Darken, Lighten, Multiply, Screen, Overlay}

	if !utils.Contains(bModes, opType) {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// apply blends a normalized source channel s with the backdrop channel b.
func (o *Blend) apply(s, b float64) float64 {
	switch o.OpType {
	case Darken:
		return utils.Min(s, b)
	case Lighten:
		return utils.Max(s, b)
	case Multiply:
		return s * b
	case Screen:
		return 1 - (1-s)*(1-b)
	case Overlay:
		if b <= 0.5 {
			return 2 * s * b
		}
		return 1 - 2*(1-s)*(1-b)
	}
	return s
}
