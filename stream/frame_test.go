package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = colorful.Color{R: 1}
	blue = colorful.Color{B: 1}
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2)
	f.SetPixel(0, red)
	f.SetPixel(1, blue)

	data, err := f.MarshalBinary()

	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 0, 0, 255}, data)
}

func TestFrameMarshalBinaryTooLarge(t *testing.T) {
	_, err := NewFrame(70000).MarshalBinary()
	assert.Error(t, err)
}

func TestFramePixelBounds(t *testing.T) {
	f := NewFrame(1)
	f.SetPixel(5, red)
	f.SetPixel(-1, red)

	assert.Equal(t, colorful.Color{}, f.Pixel(0))
	assert.Equal(t, colorful.Color{}, f.Pixel(5))
	assert.Equal(t, 1, f.Len())
}

func TestInterpolateFrame(t *testing.T) {
	from := NewFrame(1)
	from.SetPixel(0, red)
	to := NewFrame(1)
	to.SetPixel(0, blue)

	assert.True(t, from.InterpolateFrame(to, 0).Pixel(0).AlmostEqualRgb(red))
	assert.True(t, from.InterpolateFrame(to, 1).Pixel(0).AlmostEqualRgb(blue))
	assert.True(t, from.InterpolateFrame(to, 0.5).Pixel(0).AlmostEqualRgb(red.BlendHcl(blue, 0.5)))
}
