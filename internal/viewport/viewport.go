// Package viewport implements the pan/zoom state machine behind each
// comparison panel. The state is engine-agnostic: pointer and wheel
// handlers mutate plain values, and rendering derives an affine
// transform from a View snapshot. All mutation is expected to happen on
// the game loop goroutine.
package viewport

import (
	"honnef.co/go/curve"
)

// Zoom percentages. Scale is clamped to [MinScale, MaxScale] after
// every operation and starts at DefaultScale.
const (
	MinScale     = 50
	MaxScale     = 800
	DefaultScale = 200
	WheelStep    = 20
)

// Button identifies a pointer button. Only the primary button starts a
// drag; mapping device buttons onto these values is the input layer's
// concern.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// View is the render pose of a panel: zoom percentage plus pan offset
// in screen pixels. The offset is unbounded and independent of the
// zoom level.
type View struct {
	Scale  float64
	Offset curve.Vec2
}

// DefaultView returns the pose a fresh or reset panel shows.
func DefaultView() View {
	return View{Scale: DefaultScale}
}

// Transform returns the affine that maps content coordinates to screen
// coordinates: a content point p maps to p*(Scale/100) + Offset, so
// the content's top-left corner is the scaling origin and lands at
// Offset.
func (v View) Transform() curve.Affine {
	s := v.Scale / 100
	return curve.Translate(v.Offset).PreScale(s, s)
}

// Lerp linearly interpolates between v and o. Because Transform is
// linear in Scale and Offset, interpolating the view interpolates the
// transform.
func (v View) Lerp(o View, t float64) View {
	return View{
		Scale:  v.Scale + (o.Scale-v.Scale)*t,
		Offset: v.Offset.Lerp(o.Offset, t),
	}
}

// Viewport holds one panel's pan/zoom state and applies input events
// to it. The two comparison panels each own one; they never share
// state.
type Viewport struct {
	view        View
	dragging    bool
	lastPointer curve.Point
}

// New returns a viewport at the default pose, not dragging.
func New() *Viewport {
	return &Viewport{view: DefaultView()}
}

// Wheel applies one zoom step. Scroll up (dy > 0) zooms in, scroll
// down zooms out, zero is ignored. The result clamps to
// [MinScale, MaxScale], so repeated steps at a bound are no-ops.
func (v *Viewport) Wheel(dy float64) {
	switch {
	case dy > 0:
		v.view.Scale = clamp(v.view.Scale+WheelStep, MinScale, MaxScale)
	case dy < 0:
		v.view.Scale = clamp(v.view.Scale-WheelStep, MinScale, MaxScale)
	}
}

// SetScale sets the zoom percentage directly, clamped to the valid
// range. The pan offset is left alone.
func (v *Viewport) SetScale(s float64) {
	v.view.Scale = clamp(s, MinScale, MaxScale)
}

// PointerDown starts a drag at pos. Buttons other than ButtonPrimary
// are ignored entirely, including while a drag is already active.
func (v *Viewport) PointerDown(btn Button, pos curve.Point) {
	if btn != ButtonPrimary {
		return
	}
	v.dragging = true
	v.lastPointer = pos
}

// PointerMove pans by the distance from the last observed pointer
// position. Without an active drag it is a no-op. Pan distance is 1:1
// with pointer travel regardless of the current scale.
func (v *Viewport) PointerMove(pos curve.Point) {
	if !v.dragging {
		return
	}
	v.view.Offset = v.view.Offset.Add(pos.Sub(v.lastPointer))
	v.lastPointer = pos
}

// PointerUp ends the drag. Safe to call when no drag is active.
func (v *Viewport) PointerUp() {
	v.endDrag()
}

// PointerLeave ends the drag when the pointer exits the panel, so a
// release outside the window can never leave the viewport stuck in a
// dragging state.
func (v *Viewport) PointerLeave() {
	v.endDrag()
}

func (v *Viewport) endDrag() {
	v.dragging = false
	v.lastPointer = curve.Point{}
}

// Reset restores the default scale and a zero offset. An active drag
// stays active and resumes panning from the reset pose on the next
// move.
func (v *Viewport) Reset() {
	v.view = DefaultView()
}

// View returns the current pose.
func (v *Viewport) View() View {
	return v.view
}

// Scale returns the current zoom percentage.
func (v *Viewport) Scale() float64 {
	return v.view.Scale
}

// Offset returns the current pan offset in screen pixels.
func (v *Viewport) Offset() curve.Vec2 {
	return v.view.Offset
}

// Dragging reports whether a primary-button drag is active.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// Transform returns the content-to-screen affine for the current pose.
func (v *Viewport) Transform() curve.Affine {
	return v.view.Transform()
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
