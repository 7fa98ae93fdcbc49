// Package anim provides the display-value easing used by the UI's
// animated number readouts: an explicit interpolation task that a new
// target supersedes mid-flight.
package anim

import "time"

// CubicEaseOut maps progress p in [0,1] to its eased position:
// 1 - (1-p)^3. Fast start, gentle landing.
func CubicEaseOut(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Easing maps raw progress [0,1] to eased progress [0,1].
type Easing func(p float64) float64

// Tween interpolates a displayed scalar from Start to End over Duration.
type Tween struct {
	Start    float64
	End      float64
	Duration time.Duration
	Ease     Easing
}

// NewTween builds a tween with the default cubic ease-out.
func NewTween(start, end float64, duration time.Duration) Tween {
	return Tween{Start: start, End: end, Duration: duration, Ease: CubicEaseOut}
}

// ValueAt returns the displayed value after elapsed time, clamped to
// [Start..End]'s endpoints. A zero Duration jumps straight to End.
func (t Tween) ValueAt(elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return t.End
	}
	if elapsed <= 0 {
		return t.Start
	}
	p := float64(elapsed) / float64(t.Duration)
	ease := t.Ease
	if ease == nil {
		ease = CubicEaseOut
	}
	return t.Start + (t.End-t.Start)*ease(p)
}

// Done reports whether the tween has finished at the given elapsed time.
func (t Tween) Done(elapsed time.Duration) bool {
	return elapsed >= t.Duration
}

// Animator drives one displayed value through successive tweens. A new
// target cancels and replaces the in-flight tween, starting from the
// value currently on screen so the motion never jumps.
type Animator struct {
	current Tween
	started time.Time
	now     func() time.Time
}

func NewAnimator(initial float64) *Animator {
	a := &Animator{now: time.Now}
	a.current = NewTween(initial, initial, 0)
	return a
}

// Retarget supersedes the current tween with one toward the new target,
// beginning at whatever value is displayed right now.
func (a *Animator) Retarget(target float64, duration time.Duration) {
	from := a.Value()
	a.current = NewTween(from, target, duration)
	a.started = a.now()
}

// Value returns the currently displayed value.
func (a *Animator) Value() float64 {
	return a.current.ValueAt(a.now().Sub(a.started))
}
