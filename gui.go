package slider2d

import (
	"fmt"
	"image"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/gesture"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/slider2d/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Gui is the Gio window hosting a controller. It translates the pointer
// gestures into controller events and redraws the control on every frame.
type Gui struct {
	cfg struct {
		window struct {
			w     float32
			h     float32
			title string
		}
	}
	ctrl  *Controller
	style Style
	theme *material.Theme

	drag      gesture.Drag
	click     gesture.Click
	dragStart f32.Point

	ctx layout.Context
}

// NewGUI initializes the Gio interface for the controller.
func NewGUI(ctrl *Controller, style Style) *Gui {
	gui := &Gui{
		ctrl:  ctrl,
		style: style,
		theme: material.NewTheme(gofont.Collection()),
		ctx: layout.Context{
			Ops: new(op.Ops),
		},
	}
	gui.initWindow()

	return gui
}

// initWindow computes the window size from the canvas extent, leaving room
// for the title and the output label.
func (g *Gui) initWindow() {
	e := g.ctrl.Extent()
	g.cfg.window.w = float32(e.Width) + 40
	g.cfg.window.h = float32(e.Height) + 120
	g.cfg.window.title = g.style.Title
}

// Run is the core method of the Gio GUI application.
// It returns when the window is closed.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Dp(g.cfg.window.w),
		unit.Dp(g.cfg.window.h),
	))

	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			g.draw(e)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// draw lays out the title, the canvas and the output label.
func (g *Gui) draw(e system.FrameEvent) {
	g.ctx = layout.NewContext(g.ctx.Ops, e)

	layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
	}.Layout(g.ctx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return material.H6(g.theme, g.style.Title).Layout(gtx)
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.Center.Layout(gtx, g.layoutCanvas)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				out := g.ctrl.Output()
				txt := fmt.Sprintf("(%.2f, %.2f)", out.X, out.Y)
				return material.Label(g.theme, unit.Sp(16), txt).Layout(gtx)
			})
		}),
	)
	e.Frame(g.ctx.Ops)
}

// layoutCanvas draws the largest square canvas fitting the constraints and
// registers the gesture handlers.
func (g *Gui) layoutCanvas(gtx C) D {
	side := utils.Min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y) - gtx.Dp(unit.Dp(16))
	if side <= 0 {
		return D{}
	}
	size := image.Pt(side, side)

	if ext := Ext(float64(side), float64(side)); ext != g.ctrl.Extent() {
		// side is positive, the extent is always valid. A resize during
		// a drag is applied once the drag is over.
		_ = g.ctrl.Resize(ext)
	}
	g.handleGestures(gtx)

	// Clicks are registered on the whole canvas.
	area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	g.click.Add(gtx.Ops)
	area.Pop()

	g.drawCanvas(size)
	g.drawCrosshair(size)

	snap := g.ctrl.Snapshot()
	rect := handleRect(g.ctrl.Extent(), snap.Offset)
	g.drawHandle(rect, handleOpacity(snap, g.ctrl.State().Dragging))

	// The drag handler covers the handle only. It stays in the canvas
	// coordinate space so the drag positions do not follow the handle.
	handle := clip.Ellipse(rect).Push(gtx.Ops)
	g.drag.Add(gtx.Ops)
	handle.Pop()

	return D{Size: size}
}

// handleGestures forwards the pending pointer gestures to the controller.
func (g *Gui) handleGestures(gtx C) {
	for _, e := range g.drag.Events(gtx.Metric, gtx.Queue, gesture.Both) {
		sticky := !e.Modifiers.Contain(key.ModCtrl)
		switch e.Type {
		case pointer.Press:
			g.dragStart = e.Position
			g.ctrl.OnDragBegin()
		case pointer.Drag:
			g.ctrl.OnDragChange(g.translation(e.Position), sticky)
		case pointer.Release:
			g.ctrl.OnDragEnd(g.translation(e.Position), sticky)
		case pointer.Cancel:
			g.ctrl.Cancel()
		}
	}

	for _, e := range g.click.Events(gtx.Queue) {
		if e.Type != gesture.TypeClick {
			continue
		}
		switch e.NumClicks {
		case 1:
			g.ctrl.OnSingleTap(Pt(float64(e.Position.X), float64(e.Position.Y)))
		case 2:
			g.ctrl.OnDoubleTap()
		}
	}
}

// translation returns the pointer translation since the drag began.
func (g *Gui) translation(pos f32.Point) Point {
	d := pos.Sub(g.dragStart)
	return Pt(float64(d.X), float64(d.Y))
}
