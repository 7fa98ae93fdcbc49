package anim

import (
	"math"
	"testing"
	"time"
)

func TestCubicEaseOut(t *testing.T) {
	if CubicEaseOut(0) != 0 {
		t.Errorf("Ease must start at 0")
	}
	if CubicEaseOut(1) != 1 {
		t.Errorf("Ease must end at 1")
	}
	// Halfway: 1 - 0.5^3 = 0.875.
	if math.Abs(CubicEaseOut(0.5)-0.875) > 1e-9 {
		t.Errorf("Expected 0.875 at p=0.5, got %f", CubicEaseOut(0.5))
	}
}

func TestTweenEndpointsAndClamping(t *testing.T) {
	tw := NewTween(100, 200, time.Second)

	if tw.ValueAt(0) != 100 {
		t.Errorf("Expected start value at t=0, got %f", tw.ValueAt(0))
	}
	if tw.ValueAt(time.Second) != 200 {
		t.Errorf("Expected end value at duration, got %f", tw.ValueAt(time.Second))
	}
	if tw.ValueAt(5*time.Second) != 200 {
		t.Errorf("Expected clamp past duration, got %f", tw.ValueAt(5*time.Second))
	}
	if tw.ValueAt(-time.Second) != 100 {
		t.Errorf("Expected clamp before start, got %f", tw.ValueAt(-time.Second))
	}
	// Mid-flight: eased 0.875 of the way at half time.
	if math.Abs(tw.ValueAt(500*time.Millisecond)-187.5) > 1e-9 {
		t.Errorf("Expected 187.5 at half time, got %f", tw.ValueAt(500*time.Millisecond))
	}
}

func TestTweenZeroDurationJumps(t *testing.T) {
	tw := NewTween(1, 9, 0)
	if tw.ValueAt(0) != 9 {
		t.Errorf("Zero-duration tween must jump to the end value")
	}
}

func TestAnimatorRetargetSupersedes(t *testing.T) {
	clock := time.Unix(0, 0)
	a := NewAnimator(0)
	a.now = func() time.Time { return clock }

	a.Retarget(100, time.Second)
	clock = clock.Add(500 * time.Millisecond)
	mid := a.Value() // eased: 87.5

	// New target mid-flight starts from the on-screen value, no jump.
	a.Retarget(0, time.Second)
	if math.Abs(a.Value()-mid) > 1e-9 {
		t.Errorf("Retarget must start at the displayed value %f, got %f", mid, a.Value())
	}
	clock = clock.Add(2 * time.Second)
	if a.Value() != 0 {
		t.Errorf("Expected new target reached, got %f", a.Value())
	}
}
