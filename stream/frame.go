package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black frame of n pixels.
func NewFrame(n int) *Frame {
	if n < 0 {
		n = 0
	}
	return &Frame{pixels: make([]colorful.Color, n)}
}

// Len is the number of pixels in the frame.
func (f *Frame) Len() int { return len(f.pixels) }

// Pixel returns pixel i, or black when i is out of range.
func (f *Frame) Pixel(i int) colorful.Color {
	if i < 0 || i >= len(f.pixels) {
		return colorful.Color{}
	}
	return f.pixels[i]
}

// SetPixel sets pixel i. Out of range writes are dropped.
func (f *Frame) SetPixel(i int, c colorful.Color) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = c
}

// InterpolateFrame merges two frames. Pixels missing from f2 blend towards black.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.Pixel(i), transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: a little endian pixel count
// followed by one RGB triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("frame of %d pixels is too large", len(f.pixels))
	}
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
