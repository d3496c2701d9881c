package immi

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestAnimProgressClamps(t *testing.T) {
	start := time.Unix(1000, 0)
	a := &animSpec{from: Identity(), start: start, duration: time.Second}

	assertNear(t, "before start", a.progress(start.Add(-time.Minute)), 0)
	assertNear(t, "at start", a.progress(start), 0)
	assertNear(t, "midway", a.progress(start.Add(250*time.Millisecond)), 0.25)
	assertNear(t, "at end", a.progress(start.Add(time.Second)), 1)
	assertNear(t, "after end", a.progress(start.Add(time.Hour)), 1)
}

func TestAnimZeroDurationIsFinished(t *testing.T) {
	a := &animSpec{from: Identity(), start: time.Unix(1000, 0)}
	assertNear(t, "progress", a.progress(time.Unix(999, 0)), 1)
}

func TestAnimNilEasingIsLinear(t *testing.T) {
	start := time.Unix(1000, 0)
	a := &animSpec{from: Translate(-1, 0), start: start, duration: time.Second}

	target := ScaleXY(10, 10)
	got := a.transform(target, start.Add(300*time.Millisecond))
	// Linear: tx moves from -10 toward 0, 30% of the way.
	assertMatrix(t, "transform", got, Transform{10, 0, 0, 10, -7, 0})
}

func TestAnimEasingFunctionApplied(t *testing.T) {
	start := time.Unix(1000, 0)
	a := &animSpec{
		from:     Translate(-1, 0),
		start:    start,
		duration: time.Second,
		fn:       ease.InQuad,
	}

	// InQuad at t=0.5 is 0.25.
	target := ScaleXY(10, 10)
	got := a.transform(target, start.Add(500*time.Millisecond))
	if got[4] >= -7 {
		t.Errorf("tx = %v, want well below linear midpoint -5", got[4])
	}
}

func TestAnimEndpointsExact(t *testing.T) {
	start := time.Unix(1000, 0)
	a := &animSpec{from: Scale(0.5), start: start, duration: time.Second}
	target := Translate(3, 4).Mul(ScaleXY(10, 20))

	assertMatrix(t, "at start", a.transform(target, start), target.Mul(Scale(0.5)))
	assertMatrix(t, "at end", a.transform(target, start.Add(time.Second)), target)
}
