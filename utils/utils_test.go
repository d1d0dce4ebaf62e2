package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(3, Min(4, 3))
	assert.Equal(3.5, Max(1.0, 3.5))
	assert.Equal(5, Abs(-5))
	assert.Equal(-200.0, Clamp(-250.0, -200, 200))
	assert.Equal(200.0, Clamp(201.0, -200, 200))
	assert.Equal(12.5, Clamp(12.5, -200, 200))
}

func TestUtils_HexToRGBA(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#0000ff", color.NRGBA{B: 0xff, A: 0xff}},
		{"800080", color.NRGBA{R: 0x80, B: 0x80, A: 0xff}},
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#ffffff80", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}},
		{"not a color", color.NRGBA{A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToRGBA(tt.hex))
		})
	}
}

func TestUtils_DecorateAndFormat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"oops"+DefaultColor, DecorateText("oops", ErrorMessage))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
	assert.True(Contains([]string{"a", "b"}, "b"))
	assert.False(Contains([]string{"a", "b"}, "c"))
}
