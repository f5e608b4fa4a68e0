package stream

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Controller that manages animations. A reloaded animation is crossfaded in
// over a fixed number of frames.
type Controller struct {
	mu            sync.Mutex
	animation     Animation
	nextAnimation Animation
	pending       Animation

	transition          float64
	transitionIncrement float64
}

// NewController creates a Controller showing animation. A crossfade lasts
// transitionSecs at frameRate frames per second.
func NewController(animation Animation, frameRate, transitionSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.transitionIncrement = 1.0
	if frameRate > 0 && transitionSecs > 0 {
		c.transitionIncrement = 1.0 / (frameRate * transitionSecs)
	}
	return c
}

// Reload queues animation to replace the current one. It may be called from
// any goroutine; the crossfade begins on the next frame. Reloading while a
// crossfade is running restarts it towards the newest animation.
func (c *Controller) Reload(a Animation) {
	c.mu.Lock()
	c.pending = a
	c.mu.Unlock()
	log.Info().Msg("animation queued")
}

// Transitioning reports whether a crossfade is in progress or queued.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextAnimation != nil || c.pending != nil
}

// CalculateFrame renders the current animation, blending in the next one while
// a crossfade is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	if c.pending != nil {
		if c.nextAnimation != nil {
			// An unfinished crossfade snaps to its target.
			c.animation = c.nextAnimation
		}
		c.nextAnimation = c.pending
		c.pending = nil
		c.transition = 0.0
	}
	current, next := c.animation, c.nextAnimation
	c.mu.Unlock()

	if next == nil {
		return current.CalculateFrame(runtimeMs)
	}

	f1 := current.CalculateFrame(runtimeMs)
	f2 := next.CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transition)
	c.transition += c.transitionIncrement

	if c.transition >= 1.0 {
		c.mu.Lock()
		c.animation = c.nextAnimation
		c.nextAnimation = nil
		c.transition = 0.0
		c.mu.Unlock()
		log.Debug().Msg("crossfade complete")
	}

	return f
}
