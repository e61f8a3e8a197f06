package viewport

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GlideDuration is the length in seconds of the eased transition used
// for wheel zoom and reset. Long enough to read as motion, short
// enough that the controls never feel laggy.
const GlideDuration float32 = 0.1

// Animator eases a panel's displayed pose toward a target pose. The
// viewport state itself changes instantly; the animator only shapes
// what is drawn each frame.
type Animator struct {
	displayed View
	start     View
	target    View
	tween     *gween.Tween
}

// NewAnimator returns an animator resting at v.
func NewAnimator(v View) *Animator {
	return &Animator{displayed: v, start: v, target: v}
}

// Jump presents v immediately, cancelling any transition in flight.
// Called every frame during a drag, where easing would make the
// content trail the pointer.
func (a *Animator) Jump(v View) {
	a.displayed = v
	a.start = v
	a.target = v
	a.tween = nil
}

// Glide starts an eased transition from the currently displayed pose
// to v. Gliding to the current target is a no-op, so callers may
// invoke it every frame. Retargeting mid-flight restarts from the
// interpolated pose, so the motion never snaps.
func (a *Animator) Glide(v View) {
	if v == a.target {
		return
	}
	a.start = a.displayed
	a.target = v
	a.tween = gween.New(0, 1, GlideDuration, ease.OutQuad)
}

// Update advances the transition by dt seconds and returns the pose to
// draw this frame.
func (a *Animator) Update(dt float32) View {
	if a.tween == nil {
		return a.displayed
	}
	t, done := a.tween.Update(dt)
	a.displayed = a.start.Lerp(a.target, float64(t))
	if done {
		a.displayed = a.target
		a.tween = nil
	}
	return a.displayed
}

// Displayed returns the pose most recently produced by Jump or Update.
func (a *Animator) Displayed() View {
	return a.displayed
}

// Target returns the pose the animator is heading toward.
func (a *Animator) Target() View {
	return a.target
}

// Settled reports whether no transition is in flight.
func (a *Animator) Settled() bool {
	return a.tween == nil
}
