package stream

// An Animation implements a way to render a specific animation.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// Solid is an Animation of a single unchanging colour frame.
type Solid struct {
	frame *Frame
}

// NewSolid creates a frame of n pixels filled with the given colour.
func NewSolid(n int, hex string) (*Solid, error) {
	c, err := parseColour(hex, "#000000")
	if err != nil {
		return nil, err
	}
	f := NewFrame(n)
	for i := range f.pixels {
		f.pixels[i] = c
	}
	return &Solid{frame: f}, nil
}

func (s *Solid) CalculateFrame(int64) *Frame { return s.frame }
