package tween

// step is one segment of a tween's chain. props holds the values at the end
// of the step; the values at its start live on the previous step.
type step struct {
	start    float64
	duration float64
	props    Props
	ease     Ease
	passive  bool
}

// addStep appends a step starting at the current duration and returns its index.
func (tw *Tween) addStep(d float64, props Props, e Ease, passive bool) int {
	tw.steps = append(tw.steps, step{
		start:    tw.duration,
		duration: d,
		props:    props,
		ease:     e,
		passive:  passive,
	})
	tw.duration += d
	return len(tw.steps) - 1
}

// appendProps stores props as the end values of step i. A property seen for
// the first time is read from the target and injected into every earlier step
// so that all steps have an origin value for it.
func (tw *Tween) appendProps(props Props, i int) {
	s := &tw.steps[i]
	if s.props == nil {
		s.props = tw.steps[i-1].props.clone()
	}
	origin := tw.steps[0].props
	for name, v := range props {
		s.props[name] = v
		if _, ok := origin[name]; ok || tw.target == nil {
			continue
		}
		if initial, ok := tw.target.Get(name); ok {
			tw.injectProp(name, initial)
		}
	}
}

func (tw *Tween) injectProp(name string, v any) {
	for i := range tw.steps {
		if _, ok := tw.steps[i].props[name]; !ok {
			tw.steps[i].props[name] = v
		}
	}
}

// activeStep returns the index of the latest step starting at or before t.
func (tw *Tween) activeStep(t float64) int {
	i := 1
	for i+1 < len(tw.steps) && tw.steps[i+1].start <= t {
		i++
	}
	return i
}

func (tw *Tween) updatePosition(jump, end bool) {
	if len(tw.steps) < 2 {
		return
	}
	i := tw.activeStep(tw.position)
	s := &tw.steps[i]
	var ratio float64
	switch {
	case end && tw.duration == 0:
		ratio = 1
	case end:
		ratio = tw.position / tw.duration
	case s.duration == 0:
		ratio = 1
	default:
		ratio = (tw.position - s.start) / s.duration
	}
	tw.updateTargetProps(i, ratio)
}

func (tw *Tween) updateTargetProps(i int, ratio float64) {
	s := tw.steps[i]
	tw.passive = s.passive
	if s.passive || tw.target == nil {
		return
	}
	if s.ease != nil {
		ratio = s.ease(ratio)
	}
	for name, v0 := range tw.steps[i-1].props {
		tw.target.Set(name, interpolate(v0, s.props[name], ratio))
	}
}
