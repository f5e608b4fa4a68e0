package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtween/stream"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "watch", "listen", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "config.yaml", cmd.Flags().Lookup("config").DefValue)
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, setupLogging("chatty"))
}

func TestReload(t *testing.T) {
	idle, err := stream.NewSolid(10, "#000000")
	require.NoError(t, err)
	a := newApp()
	a.Config.Strip = stream.StripConfig{Pixels: 10, FrameRate: 30, Crossfade: 1}
	a.Controller = stream.NewController(idle, 30, 1)

	var bad stream.Config
	bad.Show.Segments = []stream.SegmentConfig{{Name: "x", Start: 5, Length: 10}}
	a.reload(bad)
	assert.False(t, a.Controller.Transitioning())

	var good stream.Config
	good.Show.Segments = []stream.SegmentConfig{{Name: "x", Length: 10}}
	a.reload(good)
	assert.True(t, a.Controller.Transitioning())
}
