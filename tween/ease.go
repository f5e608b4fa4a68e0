package tween

import (
	"errors"
	"fmt"

	"github.com/fogleman/ease"
)

// Ease maps a linear ratio in [0,1] to an eased ratio. A nil Ease is linear.
type Ease func(t float64) float64

// ErrUnknownEase is returned by EaseByName for names outside the catalog.
var ErrUnknownEase = errors.New("unknown ease")

var (
	Linear    Ease = ease.Linear
	InQuad    Ease = ease.InQuad
	OutQuad   Ease = ease.OutQuad
	InOutQuad Ease = ease.InOutQuad
)

var catalog = map[string]Ease{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// EaseByName looks up an easing function by its camel-case name, e.g. "inOutQuad".
// An empty name resolves to linear.
func EaseByName(name string) (Ease, error) {
	if name == "" {
		return Linear, nil
	}
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return e, nil
}

// Mirror plays e forwards over the first half of the ratio and backwards over
// the second, so the result starts and ends at 0 and peaks at 0.5.
func Mirror(e Ease) Ease {
	if e == nil {
		e = Linear
	}
	return func(t float64) float64 {
		if t <= 0.5 {
			return e(t * 2)
		}
		return e((1 - t) * 2)
	}
}
