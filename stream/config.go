package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the daemon configuration read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip StripConfig `yaml:"strip"`
	API   struct {
		Listen    string `yaml:"listen"`
		StaticDir string `yaml:"staticDir"`
	} `yaml:"api"`
	Show ShowConfig `yaml:"show"`
}

// StripConfig describes the LED strip frames are rendered for.
type StripConfig struct {
	Pixels    int     `yaml:"pixels"`
	FrameRate float64 `yaml:"frameRate"`
	// Crossfade is the length of a show change in seconds.
	Crossfade float64 `yaml:"crossfade"`
}

// ShowConfig describes a looping show: one tween per segment, all played by a
// single timeline.
type ShowConfig struct {
	Loop      int                `yaml:"loop"`
	Bounce    bool               `yaml:"bounce"`
	Reversed  bool               `yaml:"reversed"`
	TimeScale float64            `yaml:"timeScale"`
	Labels    map[string]float64 `yaml:"labels"`
	Start     string             `yaml:"start"`
	Gradient  GradientTable      `yaml:"gradient"`
	Segments  []SegmentConfig    `yaml:"segments"`
	Twinkle   TwinkleConfig      `yaml:"twinkle"`
}

// TwinkleConfig sparkles random pixels on top of the segments.
type TwinkleConfig struct {
	Particles int      `yaml:"particles"`
	Colours   []string `yaml:"colours"`
	// Period is the length of one swell in milliseconds.
	Period float64 `yaml:"period"`
	// Seed fixes the pixel sequence; zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// SegmentConfig is a run of pixels and the steps that animate it.
type SegmentConfig struct {
	Name     string       `yaml:"name"`
	Start    int          `yaml:"start"`
	Length   int          `yaml:"length"`
	Colour   string       `yaml:"colour"`
	Level    *float64     `yaml:"level"`
	Gradient bool         `yaml:"gradient"`
	Steps    []StepConfig `yaml:"steps"`
}

// StepConfig is one entry of a segment's chain. A label is placed first, then
// any wait or hold, then a transition if a colour, level or shift is given.
type StepConfig struct {
	Label    string   `yaml:"label"`
	Wait     float64  `yaml:"wait"`
	Hold     float64  `yaml:"hold"`
	Duration float64  `yaml:"duration"`
	Ease     string   `yaml:"ease"`
	Mirror   bool     `yaml:"mirror"`
	Colour   string   `yaml:"colour"`
	Level    *float64 `yaml:"level"`
	Shift    *float64 `yaml:"shift"`
}

const (
	defaultPixels    = 500
	defaultFrameRate = 30.0
	defaultCrossfade = 5.0
	defaultTopic     = "home/xmastree/stream"
	defaultListen    = ":3000"
	defaultStaticDir = "client/dist"
)

// LoadConfig reads and decodes the YAML file at path and fills in defaults.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Strip.Pixels <= 0 {
		c.Strip.Pixels = defaultPixels
	}
	if c.Strip.FrameRate <= 0 {
		c.Strip.FrameRate = defaultFrameRate
	}
	if c.Strip.Crossfade <= 0 {
		c.Strip.Crossfade = defaultCrossfade
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = defaultTopic
	}
	if c.API.Listen == "" {
		c.API.Listen = defaultListen
	}
	if c.API.StaticDir == "" {
		c.API.StaticDir = defaultStaticDir
	}
	if c.Show.TimeScale == 0 {
		c.Show.TimeScale = 1
	}
}
