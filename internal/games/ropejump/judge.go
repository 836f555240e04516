package ropejump

import "math"

// Judge decides whether the rope caught the character.
type Judge struct {
	Tolerance float64 // Rope closer than this to grounded feet counts as a hit
}

// NewJudge creates a judge with the given tolerance.
func NewJudge(tolerance float64) Judge {
	return Judge{Tolerance: tolerance}
}

// CheckCollision reports whether the rope hit the character this frame.
// A jumping character is never hit. A grounded one is hit when the rope is
// within Tolerance of the feet or anywhere inside the body.
func (j Judge) CheckCollision(ropeY, feetY, topY float64, jumping bool) bool {
	if ropeY == NoRopeY || jumping {
		return false
	}

	if math.Abs(feetY-ropeY) < j.Tolerance {
		return true
	}
	return topY < ropeY && ropeY < feetY
}

// Score counts cleared sweeps, at most one per descent.
type Score struct {
	current         int
	scoredThisCycle bool
}

// Current returns the number of cleared sweeps.
func (s *Score) Current() int {
	return s.current
}

// ScoredThisCycle reports whether the current sweep already paid out.
func (s *Score) ScoredThisCycle() bool {
	return s.scoredThisCycle
}

// Observe feeds one frame to the scorekeeper. A point is awarded the first
// time in a descent that the rope is below the feet of a jumping character.
// The guard re-arms when the rope is back above the head.
// Returns true if a point was awarded.
func (s *Score) Observe(state SweepState, ropeY, feetY float64, jumping bool) bool {
	switch state {
	case SweepAboveHead:
		s.scoredThisCycle = false
		return false
	case SweepDescending:
		if jumping && ropeY != NoRopeY && ropeY > feetY && !s.scoredThisCycle {
			s.current++
			s.scoredThisCycle = true
			return true
		}
	}
	return false
}

// Reset zeroes the score.
func (s *Score) Reset() {
	s.current = 0
	s.scoredThisCycle = false
}
