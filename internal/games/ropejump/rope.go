package ropejump

import (
	"github.com/vovakirdan/tui-ropejump/internal/config"
	"github.com/vovakirdan/tui-ropejump/internal/core"
)

// NoRopeY is returned by Rope.Update on frames with nothing to test.
const NoRopeY = -1.0

// SweepState is the rope's place in its cycle.
type SweepState int

const (
	SweepAboveHead SweepState = iota // Rope at the top, about to come down
	SweepDescending
	SweepBelowFeet // Rope at the bottom, about to come back up
	SweepAscending
)

// String returns a human-readable name for the state.
func (s SweepState) String() string {
	switch s {
	case SweepAboveHead:
		return "AboveHead"
	case SweepDescending:
		return "Descending"
	case SweepBelowFeet:
		return "BelowFeet"
	case SweepAscending:
		return "Ascending"
	default:
		return "Unknown"
	}
}

// Next returns the state that follows s in the cycle.
func (s SweepState) Next() SweepState {
	switch s {
	case SweepAboveHead:
		return SweepDescending
	case SweepDescending:
		return SweepBelowFeet
	case SweepBelowFeet:
		return SweepAscending
	case SweepAscending:
		return SweepAboveHead
	default:
		return SweepAboveHead
	}
}

// HandSource supplies the rope's two anchor points.
type HandSource interface {
	Hands() (left, right core.Vec2)
}

// Rope advances the sweep once per frame and keeps the current rope shape.
type Rope struct {
	cfg    config.RopeConfig
	hands  HandSource
	bounds Bounds

	state    SweepState
	position float64
	phase    float64

	velocity        float64
	pendingVelocity float64

	geometry []core.Vec2
}

// NewRope creates a rope resting above the head.
func NewRope(cfg config.RopeConfig, hands HandSource, bounds Bounds) *Rope {
	r := &Rope{
		cfg:    cfg,
		hands:  hands,
		bounds: bounds,
	}
	r.Reset()
	return r
}

// Reset returns the rope to the top of its sweep with configured speed.
func (r *Rope) Reset() {
	r.state = SweepAboveHead
	r.position = 0
	r.phase = 0
	r.velocity = r.cfg.Velocity
	r.pendingVelocity = r.cfg.Velocity
	r.rebuild()
}

// SetVelocity changes the sweep speed starting with the next sweep.
// Non-positive values are ignored.
func (r *Rope) SetVelocity(v float64) {
	if v <= 0 {
		return
	}
	r.pendingVelocity = min(v, 1)
}

// Update advances phase and sweep by one frame and rebuilds the geometry.
// While descending it returns the rope midpoint's Y, otherwise NoRopeY.
func (r *Rope) Update() float64 {
	r.phase = core.WrapAngle(r.phase + r.cfg.PhaseStep)

	switch r.state {
	case SweepAboveHead:
		r.velocity = r.pendingVelocity
		r.state = r.state.Next()

	case SweepDescending:
		r.position += r.velocity
		if r.position >= 1 {
			r.position = 1
			r.state = r.state.Next()
		}

	case SweepBelowFeet:
		r.state = r.state.Next()

	case SweepAscending:
		r.position -= r.velocity
		if r.position <= 0 {
			r.position = 0
			r.state = r.state.Next()
		}
	}
	r.position = core.ClampF(r.position, 0, 1)

	r.rebuild()

	if r.state != SweepDescending {
		return NoRopeY
	}
	return r.Midpoint().Y
}

// rebuild recomputes the polyline from the current hands and sweep.
func (r *Rope) rebuild() {
	left, right := r.hands.Hands()
	r.geometry = Curve(r.cfg, CurveInput{
		LeftHand:  left,
		RightHand: right,
		Bounds:    r.bounds,
		Position:  r.position,
		Phase:     r.phase,
		State:     r.state,
	})
}

// Geometry returns a copy of the current rope polyline.
func (r *Rope) Geometry() []core.Vec2 {
	out := make([]core.Vec2, len(r.geometry))
	copy(out, r.geometry)
	return out
}

// Midpoint returns the center sample of the current polyline.
func (r *Rope) Midpoint() core.Vec2 {
	return Midpoint(r.geometry)
}

// State returns the current sweep state.
func (r *Rope) State() SweepState {
	return r.state
}

// Position returns the sweep position in [0, 1].
func (r *Rope) Position() float64 {
	return r.position
}

// Phase returns the wobble phase in [0, 2π).
func (r *Rope) Phase() float64 {
	return r.phase
}

// Velocity returns the speed of the current sweep.
func (r *Rope) Velocity() float64 {
	return r.velocity
}

// Bounds returns the sweep's vertical limits.
func (r *Rope) Bounds() Bounds {
	return r.bounds
}
