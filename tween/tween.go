package tween

// Tween animates the properties of one target through a chain of steps and
// runs the actions scheduled along it.
type Tween struct {
	base

	// steps[0] holds the origin values; it is never active.
	steps   []step
	actions []action
	passive bool
}

// NewTween creates a tween of target on reg. Unless WithPaused is given the
// tween is registered straight away and starts advancing on the next tick.
func NewTween(reg *Registry, target Target, opts ...Option) *Tween {
	o := newOptions(opts)
	tw := new(Tween)
	tw.init(reg, tw, target, o)
	tw.steps = []step{{props: Props{}, passive: true}}
	if o.override && reg != nil && target != nil {
		reg.RemoveTweens(target)
	}
	tw.start(o)
	return tw
}

// Target returns the object the tween writes to.
func (tw *Tween) Target() Target { return tw.target }

// Passive reports whether the active step is passive.
func (tw *Tween) Passive() bool { return tw.passive }

// Wait appends a passive step: time advances for d but no property is written.
func (tw *Tween) Wait(d float64) *Tween {
	if d > 0 {
		tw.addStep(d, tw.steps[len(tw.steps)-1].props.clone(), nil, true)
	}
	return tw
}

// Hold appends a wait that keeps writing the held values for d.
func (tw *Tween) Hold(d float64) *Tween {
	if d > 0 {
		tw.addStep(d, tw.steps[len(tw.steps)-1].props.clone(), nil, false)
	}
	return tw
}

// To appends a transition to props over d. A nil ease is linear.
func (tw *Tween) To(props Props, d float64, e Ease) *Tween {
	if d < 0 {
		d = 0
	}
	i := tw.addStep(d, nil, e, false)
	tw.appendProps(props, i)
	return tw
}

// Call schedules fn at the current end of the tween.
func (tw *Tween) Call(fn func()) *Tween {
	tw.addAction(func(...any) { fn() }, nil)
	return tw
}

// CallWith schedules fn with params at the current end of the tween.
func (tw *Tween) CallWith(fn func(params ...any), params ...any) *Tween {
	tw.addAction(fn, params)
	return tw
}

// Set schedules an immediate assignment of props to the tween's target.
func (tw *Tween) Set(props Props) *Tween {
	return tw.SetOn(tw.target, props)
}

// SetOn schedules an immediate assignment of props to another target.
func (tw *Tween) SetOn(target Target, props Props) *Tween {
	if target == nil {
		return tw
	}
	props = props.clone()
	return tw.Call(func() {
		for name, v := range props {
			target.Set(name, v)
		}
	})
}

// Label names the current end of the tween.
func (tw *Tween) Label(name string) *Tween {
	tw.AddLabel(name, tw.duration)
	return tw
}

// Play schedules p to be unpaused. A nil p is the tween itself.
func (tw *Tween) Play(p Player) *Tween {
	if p == nil {
		p = tw
	}
	return tw.Call(func() { p.SetPaused(false) })
}

// Pause schedules p to be paused. A nil p is the tween itself.
func (tw *Tween) Pause(p Player) *Tween {
	if p == nil {
		p = tw
	}
	return tw.Call(func() { p.SetPaused(true) })
}

// Clone always fails; see ErrCloneUnsupported.
func (tw *Tween) Clone() (*Tween, error) {
	return nil, ErrCloneUnsupported
}
