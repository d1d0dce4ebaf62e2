package slider2d

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSnapTolerance is the distance, in canvas units, under which the handle
// is attracted by a magnet.
const DefaultSnapTolerance = 20

// DefaultExtent is the canvas size used when none is provided.
var DefaultExtent = Extent{Width: 400, Height: 400}

var (
	ErrInvalidExtent        = errors.New("canvas extent must be strictly positive")
	ErrInvalidVirtualExtent = errors.New("virtual extent must be strictly positive")
	ErrInvalidTolerance     = errors.New("snap tolerance must be a non-negative number")
)

// ReportMode selects which position Output reports while a drag is in progress.
// Outside of a drag all the modes report the committed position.
type ReportMode uint8

const (
	// ReportDisplay reports the position the handle is rendered at:
	// snapped when a magnet holds it and clamped to the canvas.
	ReportDisplay ReportMode = iota
	// ReportSnapped reports the snap adjusted position without clamping.
	ReportSnapped
	// ReportRaw reports the committed position plus the drag translation,
	// neither snapped nor clamped.
	ReportRaw
)

var reportModes = map[string]ReportMode{
	"display": ReportDisplay,
	"snapped": ReportSnapped,
	"raw":     ReportRaw,
}

// ParseReportMode converts the name of a report mode to its value.
func ParseReportMode(s string) (ReportMode, error) {
	m, ok := reportModes[s]
	if !ok {
		return 0, fmt.Errorf("unsupported report mode: %q", s)
	}
	return m, nil
}

func (m ReportMode) String() string {
	for k, v := range reportModes {
		if v == m {
			return k
		}
	}
	return fmt.Sprintf("ReportMode(%d)", m)
}

// Config holds the parameters of a controller.
type Config struct {
	// Extent is the canvas size in view units.
	Extent Extent
	// SnapTolerance is the magnet attraction distance in view units.
	SnapTolerance float64
	// VirtualExtent, if set, defines the output space. The output is scaled
	// by VirtualExtent/Extent on each axis.
	VirtualExtent *Extent
	// Report selects the position reported by Output during a drag.
	Report ReportMode
}

// State is the interaction state of a controller.
type State struct {
	// Committed is the last finalized handle position, relative to the canvas center.
	Committed Point
	// Live is the translation of the drag in progress. Zero when idle.
	Live Point
	// Dragging reports whether a drag is in progress.
	Dragging bool
	// Sticky is the snapping mode requested by the last drag event.
	Sticky bool
}

// Snapshot is what the host needs to redraw the control.
type Snapshot struct {
	// Offset is the handle position relative to the canvas center.
	Offset Point
	// Snapped reports whether the handle sits on a magnet.
	Snapped bool
	// Output is the scaled value of the control.
	Output Point
}

// Controller is the interaction core of the 2D slider. It consumes drag and tap
// events and keeps track of the handle position.
//
// A Controller is not safe for concurrent use; all the methods are expected
// to be called from the goroutine delivering the input events.
type Controller struct {
	grid      *SnapGrid
	tolerance float64
	report    ReportMode

	virtual    Extent
	hasVirtual bool
	scale      Point

	state   State
	pending *Extent
}

// New validates the configuration and returns a controller with the handle
// at the canvas center.
func New(cfg Config) (*Controller, error) {
	if !cfg.Extent.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, cfg.Extent)
	}
	tol := cfg.SnapTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTolerance, tol)
	}
	c := &Controller{
		grid:      NewSnapGrid(cfg.Extent),
		tolerance: tol,
		report:    cfg.Report,
	}
	if cfg.VirtualExtent != nil {
		if !cfg.VirtualExtent.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVirtualExtent, *cfg.VirtualExtent)
		}
		c.virtual, c.hasVirtual = *cfg.VirtualExtent, true
	}
	c.scale = c.computeScale()

	return c, nil
}

// computeScale returns the factors mapping the canvas space to the output space.
func (c *Controller) computeScale() Point {
	if !c.hasVirtual {
		return Point{X: 1, Y: 1}
	}
	return c.virtual.Ratio(c.grid.Extent())
}

// Extent returns the canvas extent currently in use.
func (c *Controller) Extent() Extent {
	return c.grid.Extent()
}

// Scale returns the output scale factors.
func (c *Controller) Scale() Point {
	return c.scale
}

// Tolerance returns the snap tolerance.
func (c *Controller) Tolerance() float64 {
	return c.tolerance
}

// State returns a copy of the interaction state.
func (c *Controller) State() State {
	return c.state
}

// OnDragBegin marks a drag as active. The position does not change.
func (c *Controller) OnDragBegin() {
	if c.state.Dragging {
		return
	}
	c.state.Dragging = true
	c.state.Live = Point{}
	c.state.Sticky = true
}

// OnDragChange updates the drag in progress with the translation of the pointer
// since the drag began. The committed position is left untouched.
func (c *Controller) OnDragChange(delta Point, sticky bool) Snapshot {
	c.OnDragBegin()
	c.state.Live = delta
	c.state.Sticky = sticky

	return c.Snapshot()
}

// OnDragEnd finalizes the drag. The handle is committed to the magnet when one
// holds it, otherwise to the intended position, clamped to the canvas.
func (c *Controller) OnDragEnd(delta Point, sticky bool) Snapshot {
	pos, _ := c.resolve(delta, sticky)
	c.state = State{Committed: pos.Clamp(c.grid.Extent())}
	c.applyPending()

	return c.Snapshot()
}

// OnSingleTap moves the handle exactly to p, expressed in canvas coordinates
// where the origin is the top-left corner. No snapping is applied.
func (c *Controller) OnSingleTap(p Point) Snapshot {
	e := c.grid.Extent()
	c.state = State{Committed: p.Sub(e.Center()).Clamp(e)}
	c.applyPending()

	return c.Snapshot()
}

// OnDoubleTap moves the handle back to the canvas center.
func (c *Controller) OnDoubleTap() Snapshot {
	c.state = State{}
	c.applyPending()

	return c.Snapshot()
}

// Cancel abandons the drag in progress, if any. The handle returns to the
// committed position.
func (c *Controller) Cancel() Snapshot {
	c.state.Live = Point{}
	c.state.Dragging = false
	c.state.Sticky = false
	c.applyPending()

	return c.Snapshot()
}

// Resize changes the canvas extent. The committed position is clamped to the
// new canvas and the output scale is recomputed. A drag in progress completes
// against the extent it started with; the new extent is applied once it ends.
func (c *Controller) Resize(e Extent) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidExtent, e)
	}
	c.pending = &e
	if !c.state.Dragging {
		c.applyPending()
	}
	return nil
}

func (c *Controller) applyPending() {
	if c.pending == nil {
		return
	}
	e := *c.pending
	c.pending = nil

	c.grid.Resize(e)
	c.scale = c.computeScale()
	c.state.Committed = c.state.Committed.Clamp(e)
}

// resolve returns the position the handle is meant to take for a drag
// translation, and whether a magnet holds it.
func (c *Controller) resolve(delta Point, sticky bool) (Point, bool) {
	intended := c.state.Committed.Add(delta)
	magnet := c.grid.Nearest(intended)

	if sticky && magnet.Distance(intended) < c.tolerance {
		return magnet, true
	}
	return intended, false
}

// position returns the unclamped handle position and the snap indicator,
// both derived from the current state.
func (c *Controller) position() (Point, bool) {
	if c.state.Dragging {
		return c.resolve(c.state.Live, c.state.Sticky)
	}
	p := c.state.Committed
	return p, p == c.grid.Nearest(p)
}

// Snapshot returns the render state without processing any event.
func (c *Controller) Snapshot() Snapshot {
	pos, snapped := c.position()
	return Snapshot{
		Offset:  pos.Clamp(c.grid.Extent()),
		Snapped: snapped,
		Output:  c.Output(),
	}
}

// Output returns the value of the control: the handle position scaled to the
// virtual space. It has no side effects.
func (c *Controller) Output() Point {
	var raw Point

	switch {
	case !c.state.Dragging:
		raw = c.state.Committed
	case c.report == ReportRaw:
		raw = c.state.Committed.Add(c.state.Live)
	case c.report == ReportSnapped:
		raw, _ = c.position()
	default:
		pos, _ := c.position()
		raw = pos.Clamp(c.grid.Extent())
	}
	return raw.MulComponents(c.scale)
}
