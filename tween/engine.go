package tween

import (
	"errors"
	"math"
)

// ErrCloneUnsupported is returned when cloning a player. Step and action chains
// hold references back into their owner and cannot be duplicated faithfully.
var ErrCloneUnsupported = errors.New("tween: cloning players is not supported")

// Player is the time-advancement contract shared by *Tween and *Timeline.
type Player interface {
	Advance(delta float64, ignoreActions bool)
	SetPosition(raw float64, ignoreActions, jump bool) bool
	CalculatePosition(raw float64) float64
	Position() float64
	RawPosition() float64
	Duration() float64
	Loop() int
	Reversed() bool
	Bounce() bool
	Paused() bool
	SetPaused(paused bool)
	TimeScale() float64
	SetTimeScale(s float64)
	On(t EventType, fn Listener) ListenerID
	Off(id ListenerID)
	AddLabel(name string, pos float64)
	SetLabels(labels map[string]float64)
	Labels() []Label
	CurrentLabel() (string, bool)
	Resolve(m Mark) (float64, bool)
	GotoAndPlay(m Mark)
	GotoAndStop(m Mark)

	core() *base
}

// variant is the behaviour that differs between leaf and composite players.
type variant interface {
	Player
	updatePosition(jump, end bool)
	runActionsRange(start, end float64, jump, includeStart bool) bool
	hasActions() bool
}

type entryStatus int

const (
	statusIdle entryStatus = iota
	statusActive
	statusQueued
	statusPendingRemoval
)

// base is the position engine embedded in every player. position is always
// derived from rawPosition, duration, loop, reversed and bounce.
type base struct {
	impl   variant
	reg    *Registry
	target Target
	parent *Timeline

	duration    float64
	rawPosition float64
	position    float64

	loop              int
	reversed          bool
	bounce            bool
	timeScale         float64
	useTicks          bool
	ignoreGlobalPause bool
	paused            bool

	labels labelTable
	events listeners

	// registry membership
	prev, next *base
	status     entryStatus
	lastTick   uint64
	joined     uint64
}

func (b *base) init(reg *Registry, impl variant, target Target, o options) {
	b.impl = impl
	b.reg = reg
	b.target = target
	b.rawPosition = -1
	b.paused = true
	b.loop = o.loop
	b.reversed = o.reversed
	b.bounce = o.bounce
	b.timeScale = o.timeScale
	b.useTicks = o.useTicks
	b.ignoreGlobalPause = o.ignoreGlobalPause
	b.SetLabels(o.labels)
	if o.onChange != nil {
		b.events.add(Change, o.onChange)
	}
	if o.onComplete != nil {
		b.events.add(Complete, o.onComplete)
	}
}

// start runs once construction is finished.
func (b *base) start(o options) {
	if !o.paused {
		b.SetPaused(false)
	}
	if o.position != nil {
		b.SetPosition(*o.position, false, false)
	}
}

func (b *base) core() *base { return b }

// Position is the normalized position within the current loop pass.
func (b *base) Position() float64 { return b.position }

// RawPosition is the elapsed time before loop folding, or -1 before the first update.
func (b *base) RawPosition() float64 { return b.rawPosition }

// Duration is the length of one loop pass.
func (b *base) Duration() float64 { return b.duration }

// Loop is the repeat count; Forever loops without end.
func (b *base) Loop() int { return b.loop }

func (b *base) Reversed() bool { return b.reversed }

func (b *base) Bounce() bool { return b.bounce }

func (b *base) Paused() bool { return b.paused }

func (b *base) TimeScale() float64 { return b.timeScale }

func (b *base) SetTimeScale(s float64) { b.timeScale = s }

// SetPaused registers the player with its registry when unpaused and removes
// it when paused. It is safe to call from inside an action or listener.
func (b *base) SetPaused(paused bool) {
	if b.paused == paused {
		return
	}
	b.paused = paused
	if b.reg == nil {
		return
	}
	if paused {
		b.reg.deregister(b)
	} else {
		b.reg.register(b)
	}
}

// On registers a listener and returns its id.
func (b *base) On(t EventType, fn Listener) ListenerID { return b.events.add(t, fn) }

// Off removes a listener.
func (b *base) Off(id ListenerID) { b.events.remove(id) }

// reversedAt reports whether the given loop pass plays backwards.
func (b *base) reversedAt(loop int) bool {
	return b.reversed != (b.bounce && loop%2 == 1)
}

// normalize folds raw into a single pass. It returns the directed position, the
// raw position after clamping to the end, the loop index and whether the end
// was reached.
func (b *base) normalize(raw float64) (t, clamped float64, loop int, end bool) {
	if raw < 0 {
		raw = 0
	}
	d := b.duration
	if d == 0 {
		return 0, raw, 0, true
	}
	loop, t = split(raw, d)
	if b.loop != Forever && raw >= float64(b.loop+1)*d {
		end = true
		t = d
		loop = b.loop
		raw = float64(loop)*d + d
	}
	if b.reversedAt(loop) {
		t = d - t
	}
	return t, raw, loop, end
}

// split divides raw into a loop index and the time within that loop.
func split(raw, d float64) (int, float64) {
	if raw <= 0 {
		return 0, 0
	}
	loop := int(math.Floor(raw / d))
	t := raw - float64(loop)*d
	switch {
	case t < 0:
		t = 0
	case t > d:
		t = d
	}
	return loop, t
}

// CalculatePosition previews the normalized position for raw without changing state.
func (b *base) CalculatePosition(raw float64) float64 {
	t, _, _, _ := b.normalize(raw)
	return t
}

// Advance moves the player forward by delta scaled by its time scale. A player
// that has never been updated starts from -1, so its first advance of one unit
// lands on position 0.
func (b *base) Advance(delta float64, ignoreActions bool) {
	b.SetPosition(b.rawPosition+delta*b.timeScale, ignoreActions, false)
}

// SetPosition moves the player to raw, updates its target, runs the actions
// in the traversed range and reports whether the end was reached. A jump only
// runs actions at the destination.
func (b *base) SetPosition(raw float64, ignoreActions, jump bool) bool {
	return b.SetPositionFunc(raw, ignoreActions, jump, nil)
}

// SetPositionFunc is SetPosition with a callback invoked once the target has
// been updated and before any action runs.
func (b *base) SetPositionFunc(raw float64, ignoreActions, jump bool, onUpdated func(Player)) bool {
	prev := b.rawPosition
	t, raw, _, end := b.normalize(raw)
	if b.duration == 0 {
		if prev != -1 {
			return end
		}
	} else if raw == prev {
		return end
	}

	// Committed before the update so that side effects observe the new position.
	b.position = t
	b.rawPosition = raw
	b.impl.updatePosition(jump, end)
	if end {
		b.SetPaused(true)
	}
	if onUpdated != nil {
		onUpdated(b.impl)
	}
	if !ignoreActions {
		b.runActions(prev, raw, jump, !jump && prev == -1)
	}

	b.events.emit(Event{Type: Change, Player: b.impl})
	if end {
		b.events.emit(Event{Type: Complete, Player: b.impl})
	}
	return end
}

// runActions runs the actions between two raw positions, pass by pass. It
// returns true when an action moved the player and the traversal was abandoned.
func (b *base) runActions(startRaw, endRaw float64, jump, includeStart bool) bool {
	if !b.impl.hasActions() {
		return false
	}
	d := b.duration
	reversed, bounce := b.reversed, b.bounce
	var loop0, loop1 int
	var t0, t1 float64
	if d == 0 {
		reversed, bounce = false, false
	} else {
		loop0, t0 = split(startRaw, d)
		loop1, t1 = split(endRaw, d)
	}
	if b.loop != Forever {
		if loop1 > b.loop {
			t1, loop1 = d, b.loop
		}
		if loop0 > b.loop {
			t0, loop0 = d, b.loop
		}
	}

	if jump {
		if reversed != (bounce && loop1%2 == 1) {
			t1 = d - t1
		}
		return b.impl.runActionsRange(t1, t1, true, includeStart)
	}
	if loop0 == loop1 && t0 == t1 && !includeStart {
		return false
	}

	forward := startRaw <= endRaw
	loop := loop0
	for {
		start, end := t0, t1
		if loop != loop0 {
			start = d
			if forward {
				start = 0
			}
		}
		if loop != loop1 {
			end = 0
			if forward {
				end = d
			}
		}
		if reversed != (bounce && loop%2 == 1) {
			start, end = d-start, d-end
		}
		// A bounce lands on the instant the previous pass ended on; its actions
		// already ran.
		if !(bounce && loop != loop0 && start == end) {
			if b.impl.runActionsRange(start, end, false, includeStart || loop != loop0) {
				return true
			}
		}
		includeStart = false

		if forward {
			loop++
			if loop > loop1 {
				break
			}
		} else {
			loop--
			if loop < loop1 {
				break
			}
		}
	}
	return false
}

// GotoAndPlay unpauses the player and jumps to m.
func (b *base) GotoAndPlay(m Mark) {
	b.SetPaused(false)
	b.goTo(m)
}

// GotoAndStop pauses the player and jumps to m.
func (b *base) GotoAndStop(m Mark) {
	b.SetPaused(true)
	b.goTo(m)
}

func (b *base) goTo(m Mark) {
	if pos, ok := b.Resolve(m); ok {
		b.SetPosition(pos, false, true)
	}
}
