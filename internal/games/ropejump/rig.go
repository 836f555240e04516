package ropejump

import (
	"math"

	"github.com/vovakirdan/tui-ropejump/internal/config"
	"github.com/vovakirdan/tui-ropejump/internal/core"
)

// Rig is the jumping character: a vertical jump model plus the two hand
// anchors the rope hangs from.
//
// The hands swing with the rope phase around the resting shoulders and do
// not follow the jump.
type Rig struct {
	cfg  config.CharacterConfig
	phys config.PhysicsConfig

	position  core.Vec2 // Feet anchor
	velocityY float64   // Negative = upward
	jumping   bool

	leftHand  core.Vec2
	rightHand core.Vec2
}

// NewRig creates a character standing at its resting position.
func NewRig(cfg config.CharacterConfig, phys config.PhysicsConfig) *Rig {
	r := &Rig{cfg: cfg, phys: phys}
	r.Reset()
	return r
}

// Reset puts the character back on the ground with hands at phase zero.
func (r *Rig) Reset() {
	r.position = core.Vec2{X: r.cfg.CenterX, Y: r.cfg.RestingBottomY}
	r.velocityY = 0
	r.jumping = false
	r.updateHands(0)
}

// TriggerJump starts a jump. It does nothing while already airborne.
// Returns true if a jump was started.
func (r *Rig) TriggerJump() bool {
	if r.jumping {
		return false
	}
	r.velocityY = r.phys.JumpStrength
	r.jumping = true
	return true
}

// Update advances the jump by one tick and re-anchors the hands for the
// given rope phase. Returns the current feet and head-top Y.
func (r *Rig) Update(ropePhase float64) (feetY, topY float64) {
	if r.jumping {
		r.position.Y += r.velocityY
		r.velocityY += r.phys.Gravity

		if r.position.Y >= r.cfg.RestingBottomY {
			r.position.Y = r.cfg.RestingBottomY
			r.velocityY = 0
			r.jumping = false
		}
	}

	r.updateHands(ropePhase)
	return r.FeetY(), r.TopY()
}

// updateHands recomputes both anchors from the resting shoulders.
func (r *Rig) updateHands(phase float64) {
	swing := r.cfg.HandSwing * math.Sin(phase)

	shoulderY := r.ShoulderY()
	handY := shoulderY + r.cfg.HandWobble*math.Cos(phase)
	// Screen Y grows downward: never rise above the ceiling
	if ceiling := shoulderY - r.cfg.MaxHandRise; handY < ceiling {
		handY = ceiling
	}

	r.leftHand = core.Vec2{X: r.cfg.CenterX - r.cfg.HandOffsetX + swing, Y: handY}
	r.rightHand = core.Vec2{X: r.cfg.CenterX + r.cfg.HandOffsetX - swing, Y: handY}
}

// Hands returns the left and right rope anchors.
func (r *Rig) Hands() (left, right core.Vec2) {
	return r.leftHand, r.rightHand
}

// Position returns the feet anchor.
func (r *Rig) Position() core.Vec2 {
	return r.position
}

// VelocityY returns the vertical velocity (negative = up).
func (r *Rig) VelocityY() float64 {
	return r.velocityY
}

// IsJumping reports whether the character is airborne.
func (r *Rig) IsJumping() bool {
	return r.jumping
}

// FeetY returns the current feet Y.
func (r *Rig) FeetY() float64 {
	return r.position.Y
}

// TopY returns the current head-top Y.
func (r *Rig) TopY() float64 {
	return r.position.Y - r.cfg.Height
}

// RestingBottomY returns the ground level under the feet.
func (r *Rig) RestingBottomY() float64 {
	return r.cfg.RestingBottomY
}

// ShoulderY returns the resting height the hands hang from.
func (r *Rig) ShoulderY() float64 {
	return r.cfg.RestingBottomY - r.cfg.Height + r.cfg.ShoulderDrop
}

// Height returns the character height.
func (r *Rig) Height() float64 {
	return r.cfg.Height
}
