package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func level(v float64) *float64 { return &v }

// fadeIn is a show of one white segment on pixels 0-1 of a ten pixel strip
// fading in over 100ms.
func fadeIn() ShowConfig {
	return ShowConfig{
		TimeScale: 1,
		Segments: []SegmentConfig{{
			Name:   "a",
			Length: 2,
			Colour: "#ffffff",
			Level:  level(0),
			Steps:  []StepConfig{{Duration: 100, Level: level(1)}},
		}},
	}
}

var strip = StripConfig{Pixels: 10}

func TestShowPlays(t *testing.T) {
	s, err := BuildShow(fadeIn(), strip)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Timeline().Duration())

	f := s.CalculateFrame(1000)
	assert.Equal(t, 10, f.Len())
	assert.Equal(t, 0.0, f.Pixel(0).R)

	f = s.CalculateFrame(1050)
	assert.Equal(t, 0.5, f.Pixel(0).R)
	assert.Equal(t, 0.5, f.Pixel(1).B)
	assert.Equal(t, 0.0, f.Pixel(2).R)
	assert.False(t, s.Done())

	f = s.CalculateFrame(1200)
	assert.Equal(t, 1.0, f.Pixel(0).G)
	assert.True(t, s.Done())
}

func TestShowLoopsAndBounces(t *testing.T) {
	cfg := fadeIn()
	cfg.Loop = tween.Forever
	cfg.Bounce = true
	s, err := BuildShow(cfg, strip)
	require.NoError(t, err)

	s.CalculateFrame(0)
	f := s.CalculateFrame(175)

	assert.Equal(t, 0.25, f.Pixel(0).R)
	assert.False(t, s.Done())
}

func TestShowTimeScale(t *testing.T) {
	cfg := fadeIn()
	cfg.TimeScale = 2
	s, err := BuildShow(cfg, strip)
	require.NoError(t, err)

	s.CalculateFrame(0)
	f := s.CalculateFrame(25)

	assert.Equal(t, 0.5, f.Pixel(0).R)
}

func TestShowStartLabel(t *testing.T) {
	cfg := fadeIn()
	cfg.Labels = map[string]float64{"mid": 50}
	cfg.Start = "mid"
	s, err := BuildShow(cfg, strip)
	require.NoError(t, err)

	f := s.CalculateFrame(0)

	assert.Equal(t, 0.5, f.Pixel(0).R)
}

func TestShowCollectsStepLabels(t *testing.T) {
	cfg := fadeIn()
	cfg.Segments[0].Steps = []StepConfig{
		{Wait: 20},
		{Label: "rise", Duration: 80, Level: level(1)},
	}
	s, err := BuildShow(cfg, strip)
	require.NoError(t, err)

	pos, ok := s.Timeline().Resolve(tween.Named("rise"))
	assert.True(t, ok)
	assert.Equal(t, 20.0, pos)
}

func TestShowSegmentLookup(t *testing.T) {
	s, err := BuildShow(fadeIn(), strip)
	require.NoError(t, err)

	seg, ok := s.Segment("a")
	assert.True(t, ok)
	assert.Equal(t, "a", seg.Name)

	_, ok = s.Segment("b")
	assert.False(t, ok)
}

func TestBuildShowErrors(t *testing.T) {
	outside := fadeIn()
	outside.Segments[0].Start = 9
	_, err := BuildShow(outside, strip)
	assert.ErrorIs(t, err, ErrSegmentBounds)

	badEase := fadeIn()
	badEase.Segments[0].Steps[0].Ease = "wobble"
	_, err = BuildShow(badEase, strip)
	assert.ErrorIs(t, err, tween.ErrUnknownEase)

	badColour := fadeIn()
	badColour.Segments[0].Steps[0].Colour = "red"
	_, err = BuildShow(badColour, strip)
	assert.Error(t, err)

	badStart := fadeIn()
	badStart.Start = "nowhere"
	_, err = BuildShow(badStart, strip)
	assert.Error(t, err)
}

func lit(f *Frame) []int {
	var out []int
	for i := 0; i < f.Len(); i++ {
		if f.Pixel(i) != (colorful.Color{}) {
			out = append(out, i)
		}
	}
	return out
}

func TestShowTwinkle(t *testing.T) {
	cfg := ShowConfig{Twinkle: TwinkleConfig{
		Particles: 1,
		Colours:   []string{"#ffffff"},
		Period:    100,
		Seed:      7,
	}}
	s, err := BuildShow(cfg, strip)
	require.NoError(t, err)

	assert.Empty(t, lit(s.CalculateFrame(0)))

	f := s.CalculateFrame(50)
	on := lit(f)
	require.Len(t, on, 1)
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, f.Pixel(on[0]))

	assert.Empty(t, lit(s.CalculateFrame(100)))
}

func TestShowTwinkleRejectsBadColour(t *testing.T) {
	cfg := ShowConfig{Twinkle: TwinkleConfig{Particles: 1, Colours: []string{"white"}}}

	_, err := BuildShow(cfg, strip)

	assert.Error(t, err)
}
