package tween

// action is a callback scheduled at an absolute time on its tween.
type action struct {
	time   float64
	fn     func(params ...any)
	params []any
}

func (tw *Tween) addAction(fn func(params ...any), params []any) {
	tw.actions = append(tw.actions, action{time: tw.duration, fn: fn, params: params})
}

func (tw *Tween) hasActions() bool { return len(tw.actions) > 0 }

// runActionsRange fires the actions between start and end within one pass,
// walking the list in the direction of travel. An action at end always fires,
// one at start only with includeStart. It stops as soon as an action moves the
// tween and reports that it did.
func (tw *Tween) runActionsRange(start, end float64, jump, includeStart bool) bool {
	lo, hi := start, end
	rev := start > end
	if rev {
		lo, hi = end, start
	}
	pos := tw.position
	n := len(tw.actions)
	for k := 0; k < n; k++ {
		i := k
		if rev {
			i = n - 1 - k
		}
		a := tw.actions[i]
		if a.time == end || (a.time > lo && a.time < hi) || (includeStart && a.time == start) {
			a.fn(a.params...)
			if pos != tw.position {
				return true
			}
		}
	}
	return false
}
