package immi

import (
	"time"

	"github.com/tanema/gween/ease"
)

// animSpec holds the parameters of an Animated wrapper for one frame.
type animSpec struct {
	from     Transform
	start    time.Time
	duration time.Duration
	fn       ease.TweenFunc
}

// Animated interpolates the child's placement over time: at start the child
// occupies its allotted space transformed by from, and it eases toward the
// unmodified space as the animation progresses. The easing function comes
// from gween/ease (ease.Linear, ease.OutQuad, ...); nil means linear.
//
// from is expressed in the allotted space's own units, so the same value
// works anywhere in the tree: Translate(-1.5, 0) slides in from the left,
// Scale(0.01) grows from a point. Reverse the easing function to play an
// exit animation.
//
// The engine stores no animation state; progress is derived from the clock
// every frame, so a finished animation keeps resolving to the resting
// placement at no cost.
func Animated(from Transform, start time.Time, duration time.Duration, fn ease.TweenFunc, child Desc) Desc {
	return Desc{kind: kindAnimated, children: []Desc{child}, anim: &animSpec{
		from:     from,
		start:    start,
		duration: duration,
		fn:       fn,
	}}
}

// transform lerps from target*from to target by the eased progress at now.
func (a *animSpec) transform(target Transform, now time.Time) Transform {
	f := a.progress(now)
	if f >= 1 {
		return target
	}
	return target.Mul(a.from).Lerp(target, f)
}

// progress returns the eased animation progress in [0, 1].
func (a *animSpec) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.duration {
		return 1
	}
	t := elapsed.Seconds() / a.duration.Seconds()
	if a.fn == nil {
		return t
	}
	return float64(a.fn(float32(t), 0, 1, 1))
}
