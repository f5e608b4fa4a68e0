package tween

// Timeline drives a set of child players from a single position. It has no
// steps or actions of its own: on every update all children are moved first,
// then their actions run, so no action sees a sibling's stale values.
type Timeline struct {
	base

	children []Player
}

// NewTimeline creates a timeline on reg holding children.
func NewTimeline(reg *Registry, children []Player, opts ...Option) *Timeline {
	o := newOptions(opts)
	tl := new(Timeline)
	tl.init(reg, tl, nil, o)
	tl.Add(children...)
	tl.start(o)
	return tl
}

// Children returns the timeline's players in insertion order.
func (tl *Timeline) Children() []Player {
	return append([]Player(nil), tl.children...)
}

// Add takes ownership of players: each one is detached from any previous
// timeline, paused so the registry no longer drives it, and synced to the
// timeline's current position.
func (tl *Timeline) Add(players ...Player) {
	for _, p := range players {
		c := p.core()
		if c.parent != nil {
			c.parent.Remove(p)
		}
		tl.children = append(tl.children, p)
		c.parent = tl
		p.SetPaused(true)
		if d := passes(p); d > tl.duration {
			tl.duration = d
		}
		if tl.rawPosition >= 0 {
			// Children run on the folded timeline position, not the raw one.
			p.SetPosition(tl.position, true, false)
		}
	}
}

// Remove detaches players. It reports whether all of them were children.
func (tl *Timeline) Remove(players ...Player) bool {
	all := true
	for _, p := range players {
		found := false
		for i, c := range tl.children {
			if c != p {
				continue
			}
			tl.children = append(tl.children[:i:i], tl.children[i+1:]...)
			p.core().parent = nil
			if passes(p) >= tl.duration {
				tl.UpdateDuration()
			}
			found = true
			break
		}
		all = all && found
	}
	return all
}

// UpdateDuration recomputes the duration from the children. Call it after
// extending a child that was already added.
func (tl *Timeline) UpdateDuration() {
	tl.duration = 0
	for _, p := range tl.children {
		if d := passes(p); d > tl.duration {
			tl.duration = d
		}
	}
}

// passes is the time a player needs for all its loop passes. A player that
// loops forever counts one pass.
func passes(p Player) float64 {
	d := p.Duration()
	if l := p.Loop(); l > 0 {
		d *= float64(l + 1)
	}
	return d
}

func (tl *Timeline) updatePosition(jump, end bool) {
	t := tl.position
	for _, p := range tl.Children() {
		// Actions run after every child has moved.
		p.SetPosition(t, true, jump)
	}
}

func (tl *Timeline) runActionsRange(start, end float64, jump, includeStart bool) bool {
	t := tl.position
	for _, p := range tl.Children() {
		p.core().runActions(start, end, jump, includeStart)
		if t != tl.position {
			return true
		}
	}
	return false
}

func (tl *Timeline) hasActions() bool { return len(tl.children) > 0 }

// Clone always fails; see ErrCloneUnsupported.
func (tl *Timeline) Clone() (*Timeline, error) {
	return nil, ErrCloneUnsupported
}
