package stream

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrSegmentBounds is returned when a segment does not fit on the strip.
var ErrSegmentBounds = errors.New("segment outside strip")

// Show plays a configured set of segment tweens on a timeline of its own.
// It is an Animation: every frame ticks the show's registry by the elapsed
// runtime and paints the segments.
type Show struct {
	reg      *tween.Registry
	timeline *tween.Timeline
	segments []*Segment
	twinkle  *Twinkle
	pixels   int

	lastMs  int64
	started bool
}

// BuildShow creates a show from its configuration.
func BuildShow(cfg ShowConfig, strip StripConfig) (*Show, error) {
	s := &Show{
		reg:    tween.NewRegistry(tween.WithLogger(log.Logger)),
		pixels: strip.Pixels,
	}

	labels := make(map[string]float64)
	players := make([]tween.Player, 0, len(cfg.Segments))
	for i, sc := range cfg.Segments {
		seg, tw, err := s.buildSegment(sc, cfg.Gradient)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%s): %w", i, sc.Name, err)
		}
		s.segments = append(s.segments, seg)
		players = append(players, tw)
		for _, l := range tw.Labels() {
			labels[l.Name] = l.Position
		}
	}
	for name, pos := range cfg.Labels {
		labels[name] = pos
	}

	twinkle, err := newTwinkle(s.reg, cfg.Twinkle, s.pixels)
	if err != nil {
		return nil, fmt.Errorf("twinkle: %w", err)
	}
	s.twinkle = twinkle

	timeScale := cfg.TimeScale
	if timeScale == 0 {
		timeScale = 1
	}
	s.timeline = tween.NewTimeline(s.reg, players,
		tween.WithLoop(cfg.Loop),
		tween.WithBounce(cfg.Bounce),
		tween.WithReversed(cfg.Reversed),
		tween.WithTimeScale(timeScale),
		tween.WithLabels(labels),
	)
	if cfg.Start != "" {
		if _, ok := s.timeline.Resolve(tween.Named(cfg.Start)); !ok {
			return nil, fmt.Errorf("start label %q is not defined", cfg.Start)
		}
		s.timeline.GotoAndPlay(tween.Named(cfg.Start))
	}

	log.Debug().
		Int("segments", len(s.segments)).
		Float64("duration", s.timeline.Duration()).
		Int("loop", cfg.Loop).
		Msg("show built")
	return s, nil
}

func (s *Show) buildSegment(sc SegmentConfig, gradient GradientTable) (*Segment, *tween.Tween, error) {
	if sc.Start < 0 || sc.Length < 0 || sc.Start+sc.Length > s.pixels {
		return nil, nil, fmt.Errorf("%w: pixels %d-%d of %d", ErrSegmentBounds, sc.Start, sc.Start+sc.Length, s.pixels)
	}
	colour, err := parseColour(sc.Colour, "#ffffff")
	if err != nil {
		return nil, nil, err
	}
	seg := NewSegment(sc.Name, sc.Start, sc.Length, colour)
	if sc.Level != nil {
		seg.Set(PropLevel, *sc.Level)
	}
	if sc.Gradient {
		if len(gradient) == 0 {
			gradient = Rainbow
		}
		seg.SetGradient(gradient)
	}

	tw := tween.NewTween(s.reg, seg, tween.WithPaused())
	for j, st := range sc.Steps {
		if st.Label != "" {
			tw.Label(st.Label)
		}
		tw.Wait(st.Wait)
		tw.Hold(st.Hold)

		props := tween.Props{}
		if st.Colour != "" {
			c, err := parseColour(st.Colour, "")
			if err != nil {
				return nil, nil, fmt.Errorf("step %d: %w", j, err)
			}
			props[PropColour] = c
		}
		if st.Level != nil {
			props[PropLevel] = *st.Level
		}
		if st.Shift != nil {
			props[PropShift] = *st.Shift
		}
		if len(props) == 0 {
			continue
		}
		e, err := tween.EaseByName(st.Ease)
		if err != nil {
			return nil, nil, fmt.Errorf("step %d: %w", j, err)
		}
		if st.Mirror {
			e = tween.Mirror(e)
		}
		tw.To(props, st.Duration, e)
	}
	return seg, tw, nil
}

func parseColour(hex, fallback string) (colorful.Color, error) {
	if hex == "" {
		hex = fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return c, fmt.Errorf("colour %q: %w", hex, err)
	}
	return c, nil
}

// Timeline is the player driving every segment of the show.
func (s *Show) Timeline() *tween.Timeline { return s.timeline }

// Segment looks a segment up by name.
func (s *Show) Segment(name string) (*Segment, bool) {
	return lo.Find(s.segments, func(seg *Segment) bool { return seg.Name == name })
}

// Done reports whether a finite show has played to its end.
func (s *Show) Done() bool {
	return s.timeline.Paused() && s.timeline.RawPosition() >= 0
}

// CalculateFrame advances the show to runtimeMs and renders it. The first call
// only applies the starting values.
func (s *Show) CalculateFrame(runtimeMs int64) *Frame {
	var delta int64
	if s.started {
		delta = runtimeMs - s.lastMs
	}
	s.started = true
	s.lastMs = runtimeMs
	if delta >= 0 {
		s.reg.Tick(float64(delta), false)
	}

	f := NewFrame(s.pixels)
	for _, seg := range s.segments {
		seg.Paint(f)
	}
	s.twinkle.Paint(f)
	return f
}
