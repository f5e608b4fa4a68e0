package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseByName(t *testing.T) {
	e, err := EaseByName("inQuad")
	require.NoError(t, err)
	assert.Equal(t, 0.25, e(0.5))

	e, err = EaseByName("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, e(0.3))

	_, err = EaseByName("wobble")
	assert.ErrorIs(t, err, ErrUnknownEase)
	assert.Contains(t, err.Error(), "wobble")
}

func TestMirror(t *testing.T) {
	m := Mirror(nil)

	assert.Equal(t, 0.0, m(0))
	assert.Equal(t, 0.5, m(0.25))
	assert.Equal(t, 1.0, m(0.5))
	assert.Equal(t, 0.5, m(0.75))
	assert.Equal(t, 0.0, m(1))

	q := Mirror(InQuad)
	assert.Equal(t, 0.25, q(0.25))
}
