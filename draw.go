package slider2d

import (
	"image"
	"image/color"
	"math"

	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/slider2d/imop"
	"github.com/esimov/slider2d/utils"
)

const (
	defaultCanvasColor  = "#007aff"
	defaultHandleColor  = "#af52de"
	defaultCornerRadius = 15

	// minHandleSize is the smallest handle diameter, in canvas units.
	minHandleSize = 10
	// freeHandleOpacity is applied to the handle while it is dragged freely.
	freeHandleOpacity = 0.8
)

// Style holds the visual attributes of the control.
type Style struct {
	Title        string
	CanvasColor  color.NRGBA
	HandleColor  color.NRGBA
	CrossColor   color.NRGBA
	CornerRadius float64
	// Blend is the imop blend mode mixing the handle with the canvas in
	// rendered snapshots. Empty means no blending.
	Blend string
	// Composite is the imop composition operation laying the handle over
	// the canvas in rendered snapshots. Empty means source-over.
	Composite string
}

// Validate checks the blend mode and the composition operation of s.
func (s Style) Validate() error {
	if s.Blend != "" {
		if err := imop.NewBlend().Set(s.Blend); err != nil {
			return err
		}
	}
	if s.Composite != "" {
		if err := imop.InitOp().Set(s.Composite); err != nil {
			return err
		}
	}
	return nil
}

// DefaultStyle returns the style used when no other is provided.
func DefaultStyle() Style {
	return Style{
		Title:        "Slider 2D",
		CanvasColor:  utils.HexToRGBA(defaultCanvasColor),
		HandleColor:  utils.HexToRGBA(defaultHandleColor),
		CrossColor:   color.NRGBA{A: 0xff},
		CornerRadius: defaultCornerRadius,
	}
}

// handleSize returns the handle diameter on each axis: a tenth of the canvas,
// but never less than minHandleSize.
func handleSize(e Extent) Extent {
	return Extent{
		Width:  math.Max(minHandleSize, e.Width/10),
		Height: math.Max(minHandleSize, e.Height/10),
	}
}

// handleOpacity returns the handle opacity. The handle is translucent only
// while it is dragged without being held by a magnet.
func handleOpacity(snap Snapshot, dragging bool) float64 {
	if dragging && !snap.Snapped {
		return freeHandleOpacity
	}
	return 1
}

// drawCanvas fills the rounded canvas background.
func (g *Gui) drawCanvas(size image.Point) {
	rect := image.Rectangle{Max: size}
	paint.FillShape(g.ctx.Ops, g.style.CanvasColor,
		clip.UniformRRect(rect, int(g.style.CornerRadius)).Op(g.ctx.Ops),
	)
}

// drawCrosshair draws the two axes going through the canvas center.
func (g *Gui) drawCrosshair(size image.Point) {
	cx, cy := size.X/2, size.Y/2

	paint.FillShape(g.ctx.Ops, g.style.CrossColor,
		clip.Rect(image.Rect(cx-1, 0, cx+1, size.Y)).Op(),
	)
	paint.FillShape(g.ctx.Ops, g.style.CrossColor,
		clip.Rect(image.Rect(0, cy-1, size.X, cy+1)).Op(),
	)
}

// drawHandle draws the handle disc inside rect with the given opacity.
func (g *Gui) drawHandle(rect image.Rectangle, opacity float64) {
	col := g.style.HandleColor
	col.A = uint8(math.Round(float64(col.A) * opacity))

	paint.FillShape(g.ctx.Ops, col, clip.Ellipse(rect).Op(g.ctx.Ops))
}
