package tween

// Forever is the loop count of a player that never ends.
const Forever = -1

// Option configures a Tween or Timeline at construction.
type Option func(*options)

type options struct {
	loop              int
	reversed          bool
	bounce            bool
	timeScale         float64
	useTicks          bool
	ignoreGlobalPause bool
	paused            bool
	position          *float64
	override          bool
	labels            map[string]float64
	onChange          Listener
	onComplete        Listener
}

func newOptions(opts []Option) options {
	o := options{timeScale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLoop sets how many times the player repeats after its first pass.
// Forever (-1) loops without end.
func WithLoop(n int) Option {
	return func(o *options) {
		if n < Forever {
			n = Forever
		}
		o.loop = n
	}
}

// WithReversed plays every pass backwards.
func WithReversed(v bool) Option { return func(o *options) { o.reversed = v } }

// WithBounce alternates direction on every loop pass.
func WithBounce(v bool) Option { return func(o *options) { o.bounce = v } }

// WithTimeScale multiplies every advance delta.
func WithTimeScale(s float64) Option { return func(o *options) { o.timeScale = s } }

// WithUseTicks makes each registry tick advance the player by exactly one unit.
func WithUseTicks() Option { return func(o *options) { o.useTicks = true } }

// WithIgnoreGlobalPause keeps the player advancing while the registry is paused.
func WithIgnoreGlobalPause() Option { return func(o *options) { o.ignoreGlobalPause = true } }

// WithPaused creates the player without registering it.
func WithPaused() Option { return func(o *options) { o.paused = true } }

// WithPosition moves the player to pos as soon as it is constructed.
func WithPosition(pos float64) Option {
	return func(o *options) { o.position = &pos }
}

// WithOverride removes every other tween of the same target from the registry.
// It has no effect on timelines.
func WithOverride() Option { return func(o *options) { o.override = true } }

// WithLabels seeds the label table.
func WithLabels(labels map[string]float64) Option {
	return func(o *options) { o.labels = labels }
}

// OnChange registers a Change listener.
func OnChange(fn Listener) Option { return func(o *options) { o.onChange = fn } }

// OnComplete registers a Complete listener.
func OnComplete(fn Listener) Option { return func(o *options) { o.onComplete = fn } }
