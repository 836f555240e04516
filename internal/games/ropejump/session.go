package ropejump

import (
	"github.com/vovakirdan/tui-ropejump/internal/config"
)

// Frame reports what happened during one Session.Step.
type Frame struct {
	Tick     int
	RopeY    float64 // Midpoint Y while descending, NoRopeY otherwise
	FeetY    float64
	TopY     float64
	Sweep    SweepState
	Jumped   bool
	Landed   bool
	Scored   bool
	Collided bool
}

// Session is the state of one game: the character, the rope, the judge and
// the score, stepped together one frame at a time.
type Session struct {
	cfg        config.RopeJumpConfig
	difficulty *config.DifficultyManager

	rig   *Rig
	rope  *Rope
	judge Judge
	score Score

	tick int
	over bool
}

// NewSession creates a session from a validated config.
func NewSession(cfg config.RopeJumpConfig) *Session {
	s := &Session{cfg: cfg}
	s.rig = NewRig(cfg.Character, cfg.Physics)
	s.rope = NewRope(cfg.Rope, s.rig, BoundsFor(cfg))
	s.judge = NewJudge(cfg.Judge.Tolerance)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.Reset()
	return s
}

// BoundsFor derives the sweep limits from the character's resting pose.
func BoundsFor(cfg config.RopeJumpConfig) Bounds {
	top := cfg.Character.RestingBottomY - cfg.Character.Height
	return Bounds{
		HeadTopY:   top - cfg.Rope.HeadClearance,
		BelowFeetY: cfg.Character.RestingBottomY + cfg.Rope.BelowFeetMargin,
	}
}

// Reset starts a fresh game.
func (s *Session) Reset() {
	s.rig.Reset()
	s.rope.Reset()
	s.score.Reset()
	s.tick = 0
	s.over = false
}

// Step runs one frame: input, character, rope, judge, score.
// After a collision the session is over and Step only reports the final frame.
func (s *Session) Step(jump bool) Frame {
	if s.over {
		return Frame{
			Tick:     s.tick,
			RopeY:    NoRopeY,
			FeetY:    s.rig.FeetY(),
			TopY:     s.rig.TopY(),
			Sweep:    s.rope.State(),
			Collided: true,
		}
	}

	s.tick++
	f := Frame{Tick: s.tick}

	wasJumping := s.rig.IsJumping()
	if jump {
		f.Jumped = s.rig.TriggerJump()
	}
	f.FeetY, f.TopY = s.rig.Update(s.rope.Phase())
	f.Landed = wasJumping && !s.rig.IsJumping()

	// Only adopted when the next sweep starts
	s.rope.SetVelocity(s.difficulty.Speed(s.cfg.Rope.Velocity, s.score.Current(), s.tick))

	f.RopeY = s.rope.Update()
	f.Sweep = s.rope.State()

	jumping := s.rig.IsJumping()
	if s.judge.CheckCollision(f.RopeY, f.FeetY, f.TopY, jumping) {
		f.Collided = true
		s.over = true
		return f
	}

	f.Scored = s.score.Observe(f.Sweep, f.RopeY, f.FeetY, jumping)
	return f
}

// Over reports whether the rope has caught the character.
func (s *Session) Over() bool {
	return s.over
}

// Score returns the number of cleared sweeps.
func (s *Session) Score() int {
	return s.score.Current()
}

// ScoredThisCycle reports whether the current sweep already paid out.
func (s *Session) ScoredThisCycle() bool {
	return s.score.ScoredThisCycle()
}

// Tick returns the number of frames played.
func (s *Session) Tick() int {
	return s.tick
}

// Rig returns the character.
func (s *Session) Rig() *Rig {
	return s.rig
}

// Rope returns the rope.
func (s *Session) Rope() *Rope {
	return s.rope
}

// Judge returns the collision judge.
func (s *Session) Judge() Judge {
	return s.judge
}

// Difficulty returns the difficulty manager driving rope speed.
func (s *Session) Difficulty() *config.DifficultyManager {
	return s.difficulty
}
