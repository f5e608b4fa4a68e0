package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Properties a Segment exposes to tweens.
const (
	PropColour = "colour"
	PropLevel  = "level"
	PropShift  = "shift"
)

// Segment is a run of pixels on the strip painted in one colour, or along a
// gradient, at some brightness level. It is the target of one show tween.
type Segment struct {
	Name string

	start, length int
	colour        colorful.Color
	level         float64
	shift         float64
	gradient      GradientTable
}

// NewSegment creates a fully lit segment of length pixels from start.
func NewSegment(name string, start, length int, colour colorful.Color) *Segment {
	return &Segment{
		Name:   name,
		start:  start,
		length: length,
		colour: colour,
		level:  1,
	}
}

// SetGradient paints the segment along g. The segment colour then only
// contributes its chroma and luminance.
func (s *Segment) SetGradient(g GradientTable) { s.gradient = g }

// Get implements tween.Target.
func (s *Segment) Get(name string) (any, bool) {
	switch name {
	case PropColour:
		return s.colour, true
	case PropLevel:
		return s.level, true
	case PropShift:
		return s.shift, true
	}
	return nil, false
}

// Set implements tween.Target. Values of the wrong type are ignored.
func (s *Segment) Set(name string, v any) {
	switch name {
	case PropColour:
		if c, ok := v.(colorful.Color); ok {
			s.colour = c
		}
	case PropLevel:
		if f, ok := v.(float64); ok {
			s.level = math.Max(0, math.Min(1, f))
		}
	case PropShift:
		if f, ok := v.(float64); ok {
			s.shift = f
		}
	}
}

// Paint draws the segment into f.
func (s *Segment) Paint(f *Frame) {
	if s.length <= 0 {
		return
	}
	_, c, l := s.colour.Hcl()
	for i := 0; i < s.length; i++ {
		col := s.colour
		if len(s.gradient) > 0 {
			t := math.Mod(float64(i)+s.shift, float64(s.length))
			if t < 0 {
				t += float64(s.length)
			}
			col = s.gradient.GetColor(t/float64(s.length), c, l)
		}
		f.SetPixel(s.start+i, scale(col, s.level))
	}
}

func scale(c colorful.Color, level float64) colorful.Color {
	return colorful.Color{R: c.R * level, G: c.G * level, B: c.B * level}
}
