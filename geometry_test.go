package slider2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	p := Pt(3, -4)
	q := Pt(1, 2)

	assert.Equal(Pt(4, -2), p.Add(q))
	assert.Equal(Pt(2, -6), p.Sub(q))
	assert.Equal(Pt(13, 6), p.AddExtent(Ext(10, 10)))
	assert.Equal(Pt(-7, -14), p.SubExtent(Ext(10, 10)))
	assert.Equal(Pt(6, -8), p.Mul(2))
	assert.Equal(Pt(1.5, -2), p.Div(2))
	assert.Equal(Pt(3, -8), p.MulComponents(q))
	assert.Equal(Ext(800, 200), Ext(400, 100).Mul(2))
	assert.Equal(Ext(200, 50), Ext(400, 100).Div(2))

	// Operations produce new values and leave the receiver untouched.
	assert.Equal(Pt(3, -4), p)
}

func TestGeometry_Distance(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(Pt(3, 4).Distance(Pt(0, 0)), Pt(0, 0).Distance(Pt(3, 4)))
	assert.InDelta(math.Sqrt2, Pt(199, 1).Distance(Pt(200, 0)), 1e-12)
	assert.Zero(Pt(7, 7).Distance(Pt(7, 7)))
}

func TestGeometry_Clamp(t *testing.T) {
	area := Ext(400, 300)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{name: "inside", in: Pt(10, -20), want: Pt(10, -20)},
		{name: "right edge", in: Pt(250, 0), want: Pt(200, 0)},
		{name: "bottom left", in: Pt(-900, 151), want: Pt(-200, 150)},
		{name: "exact corner", in: Pt(200, -150), want: Pt(200, -150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(area)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.In(area))
		})
	}
	assert.False(t, Pt(201, 0).In(area))
}

func TestGeometry_Extent(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Pt(200, 200), Ext(400, 400).Center())
	assert.Equal(Pt(1.25, 0.5), Ext(500, 200).Ratio(Ext(400, 400)))
	assert.True(Ext(1, 1).Valid())
	assert.False(Ext(0, 400).Valid())
	assert.False(Ext(400, -1).Valid())
	assert.False(Ext(math.Inf(1), 10).Valid())
	assert.False(Ext(math.NaN(), 10).Valid())
	assert.Equal("(150.00, -150.00)", Pt(150, -150).String())
}
