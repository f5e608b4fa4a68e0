package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  url: tcp://broker:1883
  username: tree
strip:
  pixels: 50
show:
  loop: -1
  bounce: true
  labels:
    mid: 500
  segments:
    - name: base
      start: 0
      length: 50
      colour: "#ff0000"
      steps:
        - duration: 1000
          level: 0.25
          ease: inOutQuad
`)

	c, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, "tree", c.Mqtt.Username)
	assert.Equal(t, defaultTopic, c.Mqtt.Topics.Stream)
	assert.Equal(t, 50, c.Strip.Pixels)
	assert.Equal(t, defaultFrameRate, c.Strip.FrameRate)
	assert.Equal(t, defaultListen, c.API.Listen)
	assert.Equal(t, -1, c.Show.Loop)
	assert.True(t, c.Show.Bounce)
	assert.Equal(t, 1.0, c.Show.TimeScale)
	assert.Equal(t, map[string]float64{"mid": 500}, c.Show.Labels)
	require.Len(t, c.Show.Segments, 1)
	step := c.Show.Segments[0].Steps[0]
	assert.Equal(t, 1000.0, step.Duration)
	require.NotNil(t, step.Level)
	assert.Equal(t, 0.25, *step.Level)
	assert.Equal(t, "inOutQuad", step.Ease)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "strip:\n  pixelz: 5\n")

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
