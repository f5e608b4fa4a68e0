package tween

import (
	"github.com/rs/zerolog"
)

// Registry is the list of unpaused players advanced by Tick. Players join it
// when unpaused and leave when paused; both may happen from inside a tick
// without disturbing the walk in progress.
type Registry struct {
	head, tail *base
	count      int

	inTick bool
	tickID uint64

	log zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for membership tracing.
func WithLogger(l zerolog.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := new(Registry)
	r.log = zerolog.Nop()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len is the number of players that will be considered on the next tick.
func (r *Registry) Len() int { return r.count }

func (r *Registry) register(b *base) {
	switch b.status {
	case statusPendingRemoval:
		// Still linked; the walk has not reached it yet.
		b.status = statusActive
		r.count++
		return
	case statusIdle:
	default:
		return
	}
	b.prev, b.next = r.tail, nil
	if r.tail == nil {
		r.head = b
	} else {
		r.tail.next = b
	}
	r.tail = b
	r.count++
	if r.inTick {
		b.status = statusQueued
		b.joined = r.tickID
	} else {
		b.status = statusActive
	}
	r.log.Trace().Float64("duration", b.duration).Bool("queued", r.inTick).Msg("player registered")
}

func (r *Registry) deregister(b *base) {
	if b.status != statusActive && b.status != statusQueued {
		return
	}
	r.count--
	if r.inTick && b.lastTick != r.tickID {
		// The walk still has to pass this node; it is spliced out there.
		b.status = statusPendingRemoval
		r.log.Trace().Msg("player removal deferred")
		return
	}
	r.unlink(b)
	r.log.Trace().Msg("player deregistered")
}

func (r *Registry) unlink(b *base) {
	if b.prev == nil {
		r.head = b.next
	} else {
		b.prev.next = b.next
	}
	if b.next == nil {
		r.tail = b.prev
	} else {
		b.next.prev = b.prev
	}
	b.prev, b.next = nil, nil
	b.status = statusIdle
}

// Tick advances every registered player by delta, or by one for players using
// ticks. While paused is set only players ignoring the global pause advance.
// Players registered during the tick are first advanced on the next one.
func (r *Registry) Tick(delta float64, paused bool) {
	r.tickID++
	r.inTick = true
	defer func() { r.inTick = false }()

	for b := r.head; b != nil; {
		next := b.next
		b.lastTick = r.tickID
		if b.status == statusQueued && b.joined != r.tickID {
			b.status = statusActive
		}
		switch {
		case b.status == statusQueued:
		case b.status == statusPendingRemoval:
			r.unlink(b)
			r.log.Trace().Msg("deferred removal spliced")
		case b.paused || (paused && !b.ignoreGlobalPause):
		case b.useTicks:
			b.Advance(1, false)
		default:
			b.Advance(delta, false)
		}
		b = next
	}
}

// RemoveTweens pauses every registered tween of target.
func (r *Registry) RemoveTweens(target Target) {
	if target == nil {
		return
	}
	for b := r.head; b != nil; {
		next := b.next
		if b.target == target {
			b.SetPaused(true)
		}
		b = next
	}
}

// HasActive reports whether any registered player drives target. A nil target
// asks whether anything is registered at all.
func (r *Registry) HasActive(target Target) bool {
	for b := r.head; b != nil; b = b.next {
		if b.status == statusPendingRemoval {
			continue
		}
		if target == nil || b.target == target {
			return true
		}
	}
	return false
}

// Reset pauses every registered player, leaving the registry empty once any
// tick in progress has finished.
func (r *Registry) Reset() {
	for b := r.head; b != nil; {
		next := b.next
		b.SetPaused(true)
		b = next
	}
	r.log.Debug().Int("remaining", r.count).Msg("registry reset")
}
