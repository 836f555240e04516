package ropejump

import (
	"math"

	"github.com/vovakirdan/tui-ropejump/internal/config"
	"github.com/vovakirdan/tui-ropejump/internal/core"
)

// Bounds are the fixed vertical limits of a sweep.
type Bounds struct {
	HeadTopY   float64 // Rope position 0
	BelowFeetY float64 // Rope position 1
}

// MidlineY returns the height the rope's center hangs at for a sweep position.
func (b Bounds) MidlineY(position float64) float64 {
	return core.Lerp(b.HeadTopY, b.BelowFeetY, position)
}

// CurveInput is everything the rope shape depends on.
type CurveInput struct {
	LeftHand, RightHand core.Vec2
	Bounds              Bounds
	Position            float64 // 0 = head height, 1 = below the feet
	Phase               float64
	State               SweepState
}

// Curve samples the rope as a polyline of cfg.Samples+1 points from the left
// hand to the right hand. It is a pure function of its inputs.
//
// The rope hangs from the hands toward the sweep midline with a sin(πt)
// profile. While moving it also bulges by MaxCurveHeight·4p(1-p): toward the
// top bound when ascending and in the first half of a descent, toward the
// bottom bound once a descent passes p=0.5. At rest it keeps a small fixed
// slack instead.
func Curve(cfg config.RopeConfig, in CurveInput) []core.Vec2 {
	n := max(cfg.Samples, 1)
	p := core.ClampF(in.Position, 0, 1)
	midY := in.Bounds.MidlineY(p)

	var bulge, jitter float64
	switch in.State {
	case SweepDescending, SweepAscending:
		envelope := 4 * p * (1 - p)
		bulge = cfg.MaxCurveHeight * envelope * bulgeDirection(in.State, p)
		jitter = cfg.Jitter * math.Sin(in.Phase*2)
	case SweepAboveHead, SweepBelowFeet:
		bulge = cfg.RestCurveHeight
	}

	points := make([]core.Vec2, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		base := core.LerpVec(in.LeftHand, in.RightHand, t)
		arc := math.Sin(math.Pi * t)

		points[i] = core.Vec2{
			X: base.X + jitter*arc,
			Y: base.Y + (midY-base.Y)*arc + bulge*arc,
		}
	}
	return points
}

// bulgeDirection returns -1 for a bulge toward the head, +1 toward the feet.
func bulgeDirection(state SweepState, p float64) float64 {
	if state == SweepDescending && p >= 0.5 {
		return 1
	}
	return -1
}

// Midpoint returns the sample at the middle of a polyline.
func Midpoint(points []core.Vec2) core.Vec2 {
	if len(points) == 0 {
		return core.Vec2{}
	}
	return points[len(points)/2]
}
