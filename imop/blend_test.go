package imop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlend_Basic(t *testing.T) {
	assert := assert.New(t)

	op := NewBlend()
	assert.Empty(op.Get())
	assert.Error(op.Set("blend_mode_not_supported"))
	assert.Empty(op.Get())
	assert.NoError(op.Set(Darken))
	assert.Equal(Darken, op.Get())
	assert.NoError(op.Set(Lighten))
	assert.Equal(Lighten, op.Get())
	assert.Error(op.Set("sideways"))
	assert.Equal(Lighten, op.Get())
}

func TestBlend_Modes(t *testing.T) {
	tests := []struct {
		mode string
		s, b float64
		want float64
	}{
		{Darken, 0.2, 0.6, 0.2},
		{Lighten, 0.2, 0.6, 0.6},
		{Multiply, 0.5, 0.5, 0.25},
		{Screen, 0.5, 0.5, 0.75},
		{Overlay, 0.5, 0.25, 0.25},
		{Overlay, 0.5, 0.75, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			op := NewBlend()
			op.Set(tt.mode)
			assert.InDelta(t, tt.want, op.apply(tt.s, tt.b), 1e-9)
		})
	}
}
