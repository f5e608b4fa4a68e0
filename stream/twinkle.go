package stream

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

const defaultTwinklePeriod = 1500.0

type particle struct {
	pixel  int
	colour colorful.Color
	values *tween.Values
}

// A Twinkle sparkles random pixels over whatever the show painted. Each
// particle is a forever looping tween that swells its level up and back down
// and hops to a new pixel, with a new colour from the palette, after every
// pass.
type Twinkle struct {
	particles []*particle
}

func newTwinkle(reg *tween.Registry, cfg TwinkleConfig, pixels int) (*Twinkle, error) {
	t := new(Twinkle)
	if cfg.Particles <= 0 || pixels <= 0 {
		return t, nil
	}
	palette := make([]colorful.Color, 0, len(cfg.Colours))
	for _, hex := range cfg.Colours {
		c, err := parseColour(hex, "")
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		c, _ := colorful.Hex("#404040")
		palette = append(palette, c)
	}
	period := cfg.Period
	if period <= 0 {
		period = defaultTwinklePeriod
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	swell := tween.Mirror(tween.InOutQuad)
	for i := 0; i < cfg.Particles; i++ {
		p := &particle{values: tween.NewValues(tween.Props{PropLevel: 0.0})}
		hop := func() {
			p.pixel = rnd.Intn(pixels)
			p.colour = palette[rnd.Intn(len(palette))]
		}
		hop()
		tw := tween.NewTween(reg, p.values, tween.WithPaused(), tween.WithLoop(tween.Forever)).
			To(tween.Props{PropLevel: 1.0}, period, swell).
			Call(hop)
		// Staggered so the particles do not swell in step.
		tw.SetPosition(period*float64(i)/float64(cfg.Particles), true, false)
		tw.SetPaused(false)
		t.particles = append(t.particles, p)
	}
	return t, nil
}

// Paint blends every particle into f by its current level.
func (t *Twinkle) Paint(f *Frame) {
	for _, p := range t.particles {
		lvl := p.values.Float(PropLevel)
		f.SetPixel(p.pixel, f.Pixel(p.pixel).BlendRgb(p.colour, lvl))
	}
}
