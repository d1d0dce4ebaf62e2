package slider2d

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testExtent = Ext(400, 400)

func newTestController(t *testing.T, virtual *Extent) *Controller {
	t.Helper()

	c, err := New(Config{
		Extent:        testExtent,
		SnapTolerance: DefaultSnapTolerance,
		VirtualExtent: virtual,
	})
	if err != nil {
		t.Fatalf("could not create the controller: %v", err)
	}
	return c
}

func TestController_InitialState(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	assert.Equal(State{}, c.State())
	assert.Equal(Pt(1, 1), c.Scale())
	assert.Equal(Snapshot{Snapped: true}, c.Snapshot())
	assert.Equal(Point{}, c.Output())
}

func TestController_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero extent", Config{Extent: Ext(0, 400)}, ErrInvalidExtent},
		{"negative extent", Config{Extent: Ext(400, -5)}, ErrInvalidExtent},
		{"negative tolerance", Config{Extent: testExtent, SnapTolerance: -1}, ErrInvalidTolerance},
		{"nan tolerance", Config{Extent: testExtent, SnapTolerance: math.NaN()}, ErrInvalidTolerance},
		{"zero virtual", Config{Extent: testExtent, VirtualExtent: &Extent{0, 10}}, ErrInvalidVirtualExtent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestController_SnapOnDragEnd(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	snap := c.OnDragChange(Pt(199, 1), true)
	assert.Equal(Pt(200, 0), snap.Offset)
	assert.True(snap.Snapped)
	// The committed position is not touched while dragging.
	assert.Equal(Point{}, c.State().Committed)

	snap = c.OnDragEnd(Pt(199, 1), true)
	assert.Equal(Pt(200, 0), c.State().Committed)
	assert.Equal(Pt(200, 0), snap.Offset)
	assert.True(snap.Snapped)
	assert.False(c.State().Dragging)
	assert.Equal(Point{}, c.State().Live)
}

func TestController_NoSnapPassthrough(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	c.OnDragBegin()
	snap := c.OnDragChange(Pt(150, 150), true)
	assert.Equal(Pt(150, 150), snap.Offset)
	assert.False(snap.Snapped)

	c.OnDragEnd(Pt(150, 150), true)
	assert.Equal(Pt(150, 150), c.State().Committed)
	assert.False(c.Snapshot().Snapped)
}

func TestController_FreeDragBypassesMagnets(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	snap := c.OnDragChange(Pt(199, 1), false)
	assert.Equal(Pt(199, 1), snap.Offset)
	assert.False(snap.Snapped)

	// Releasing the modifier mid-drag snaps again on the next move.
	snap = c.OnDragChange(Pt(198, 2), true)
	assert.Equal(Pt(200, 0), snap.Offset)
	assert.True(snap.Snapped)

	c.OnDragEnd(Pt(199, 1), false)
	assert.Equal(Pt(199, 1), c.State().Committed)
}

func TestController_DragIsRelativeToCommitted(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	c.OnDragEnd(Pt(150, 150), true)
	snap := c.OnDragChange(Pt(-45, -52), true)
	assert.Equal(Pt(100, 100), snap.Offset)
	assert.True(snap.Snapped)

	c.OnDragEnd(Pt(-45, -52), true)
	assert.Equal(Pt(100, 100), c.State().Committed)
}

func TestController_OverDragIsClamped(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	snap := c.OnDragChange(Pt(500, -320), false)
	assert.Equal(Pt(200, -200), snap.Offset)

	c.OnDragEnd(Pt(500, -320), false)
	assert.Equal(Pt(200, -200), c.State().Committed)
}

func TestController_ScaledOutput(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, &Extent{500, 500})

	assert.Equal(Pt(1.25, 1.25), c.Scale())
	c.OnDragEnd(Pt(200, 200), true)
	assert.Equal(Pt(200, 200), c.State().Committed)
	assert.Equal(Pt(250, 250), c.Output())
	assert.Equal(c.Output(), c.Output())
	assert.Equal(Pt(250, 250), c.Snapshot().Output)
}

func TestController_DoubleTapResets(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, &Extent{500, 500})

	c.OnDragEnd(Pt(-120, 33), false)
	assert.NotEqual(Point{}, c.State().Committed)

	snap := c.OnDoubleTap()
	assert.Equal(State{}, c.State())
	assert.Equal(Point{}, c.Output())
	assert.Equal(Point{}, snap.Offset)
}

func TestController_SingleTapIsExact(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	c.OnSingleTap(Pt(350, 50))
	assert.Equal(Pt(150, -150), c.State().Committed)

	// Close to the (200, 0) magnet, but a tap never snaps.
	snap := c.OnSingleTap(Pt(399, 201))
	assert.Equal(Pt(199, 1), c.State().Committed)
	assert.False(snap.Snapped)

	// Taps outside of the canvas are pinned to its edge.
	c.OnSingleTap(Pt(-50, 900))
	assert.Equal(Pt(-200, 200), c.State().Committed)
}

func TestController_ReportModes(t *testing.T) {
	virtual := Ext(800, 800)

	tests := []struct {
		mode ReportMode
		want Point
	}{
		{ReportDisplay, Pt(400, 0)},
		{ReportSnapped, Pt(400, 0)},
		{ReportRaw, Pt(398, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c, err := New(Config{Extent: testExtent, SnapTolerance: 20, VirtualExtent: &virtual, Report: tt.mode})
			assert.NoError(t, err)

			c.OnDragChange(Pt(199, 1), true)
			assert.Equal(t, tt.want, c.Output())
		})
	}

	t.Run("over-drag", func(t *testing.T) {
		assert := assert.New(t)

		display, _ := New(Config{Extent: testExtent, Report: ReportDisplay})
		display.OnDragChange(Pt(300, 0), false)
		assert.Equal(Pt(200, 0), display.Output())

		snapped, _ := New(Config{Extent: testExtent, Report: ReportSnapped})
		snapped.OnDragChange(Pt(300, 0), false)
		assert.Equal(Pt(300, 0), snapped.Output())
	})
}

func TestController_ParseReportMode(t *testing.T) {
	assert := assert.New(t)

	m, err := ParseReportMode("raw")
	assert.NoError(err)
	assert.Equal(ReportRaw, m)

	_, err = ParseReportMode("sideways")
	assert.Error(err)
}

func TestController_CancelKeepsCommitted(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	c.OnDragEnd(Pt(50, 50), false)
	c.OnDragChange(Pt(100, 0), true)
	snap := c.Cancel()

	assert.Equal(State{Committed: Pt(50, 50)}, c.State())
	assert.Equal(Pt(50, 50), snap.Offset)
}

func TestController_ResizeIsDeferredDuringDrag(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, &Extent{500, 500})

	c.OnDragChange(Pt(190, 0), true)
	assert.NoError(c.Resize(Ext(200, 200)))

	// The drag completes against the extent it started with.
	assert.Equal(testExtent, c.Extent())
	snap := c.OnDragChange(Pt(195, 0), true)
	assert.Equal(Pt(200, 0), snap.Offset)

	c.OnDragEnd(Pt(195, 0), true)
	assert.Equal(Ext(200, 200), c.Extent())
	assert.Equal(Pt(100, 0), c.State().Committed)
	assert.Equal(Pt(2.5, 2.5), c.Scale())
	assert.Equal(Pt(250, 0), c.Output())
}

func TestController_ResizeWhenIdle(t *testing.T) {
	assert := assert.New(t)
	c := newTestController(t, nil)

	c.OnSingleTap(Pt(0, 0))
	assert.Equal(Pt(-200, -200), c.State().Committed)

	assert.NoError(c.Resize(Ext(100, 300)))
	assert.Equal(Pt(-50, -150), c.State().Committed)
	assert.True(errors.Is(c.Resize(Ext(-1, 1)), ErrInvalidExtent))
	assert.Equal(Ext(100, 300), c.Extent())
}

func TestController_BoundsInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	c := newTestController(t, nil)

	coord := func() float64 { return (rnd.Float64() - 0.5) * 2000 }
	for i := 0; i < 2000; i++ {
		switch rnd.Intn(4) {
		case 0, 1:
			sticky := rnd.Intn(2) == 0
			for j := rnd.Intn(4); j > 0; j-- {
				snap := c.OnDragChange(Pt(coord(), coord()), sticky)
				if !snap.Offset.In(testExtent) {
					t.Fatalf("display offset %v out of bounds", snap.Offset)
				}
			}
			c.OnDragEnd(Pt(coord(), coord()), sticky)
		case 2:
			c.OnSingleTap(Pt(coord(), coord()))
		case 3:
			c.OnDoubleTap()
		}
		if p := c.State().Committed; !p.In(testExtent) {
			t.Fatalf("committed position %v out of bounds", p)
		}
	}
}
