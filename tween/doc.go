// Package tween interpolates object properties over time.
//
// A Tween owns a chain of steps built with Wait, To and friends, plus a list
// of actions scheduled with Call and Set. A Timeline drives several players
// from one position. Both share the same position engine: a raw elapsed time
// is folded into a loop pass, corrected for reversal and bounce, applied to
// the target, and the actions in the traversed range run exactly once.
//
// Nothing advances on its own. The caller owns a Registry and calls Tick from
// its heartbeat:
//
//	reg := tween.NewRegistry()
//	led := tween.NewValues(tween.Props{"level": 0.0})
//	tween.NewTween(reg, led, tween.WithLoop(tween.Forever), tween.WithBounce(true)).
//		To(tween.Props{"level": 1.0}, 500, tween.InOutQuad)
//
//	for range ticker.C {
//		reg.Tick(16, false)
//	}
//
// Everything is synchronous and single threaded. Actions may move or pause
// any player, including the one running them.
package tween
