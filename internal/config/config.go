// Package config provides YAML-based game configuration loading and
// difficulty management for the rope jump game.
//
// All physics values are per-tick quantities tuned for 60 ticks per second.
// Running at another tick rate changes the game speed; re-tune instead of
// rescaling.
package config

import (
	"errors"
	"fmt"
)

// RopeJumpConfig contains all configuration for the rope jump game.
type RopeJumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Character  CharacterConfig  `yaml:"character"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Rope       RopeConfig       `yaml:"rope"`
	Judge      JudgeConfig      `yaml:"judge"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the virtual playfield the simulation runs in.
// Rendering scales it onto whatever terminal size is available.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the jumper's pose and hand rig.
type CharacterConfig struct {
	CenterX        float64 `yaml:"center_x"`
	RestingBottomY float64 `yaml:"resting_bottom_y"` // Ground level under the feet
	Height         float64 `yaml:"height"`           // Feet to top of head
	HandOffsetX    float64 `yaml:"hand_offset_x"`    // Horizontal distance of each hand from center
	ShoulderDrop   float64 `yaml:"shoulder_drop"`    // Hands hang this far below the head top
	HandSwing      float64 `yaml:"hand_swing"`       // Horizontal swing amplitude
	HandWobble     float64 `yaml:"hand_wobble"`      // Vertical wobble amplitude
	MaxHandRise    float64 `yaml:"max_hand_rise"`    // Hands never rise more than this above the shoulders
}

// PhysicsConfig defines the vertical jump model.
type PhysicsConfig struct {
	JumpStrength float64 `yaml:"jump_strength"` // Initial velocity on jump (negative = up)
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every tick while airborne
}

// RopeConfig defines the rope sweep and its drawn shape.
type RopeConfig struct {
	Samples         int     `yaml:"samples"`           // Polyline segments
	Velocity        float64 `yaml:"velocity"`          // Sweep position change per tick
	PhaseStep       float64 `yaml:"phase_step"`        // Wobble phase change per tick
	HeadClearance   float64 `yaml:"head_clearance"`    // Top of the sweep above the head
	BelowFeetMargin float64 `yaml:"below_feet_margin"` // Bottom of the sweep below the feet
	MaxCurveHeight  float64 `yaml:"max_curve_height"`  // Bulge at mid-sweep
	RestCurveHeight float64 `yaml:"rest_curve_height"` // Slack at the extremes
	Jitter          float64 `yaml:"jitter"`            // Horizontal wobble amplitude
}

// JudgeConfig defines the collision tolerance.
type JudgeConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to rope velocity at max difficulty
	MaxVelocity     float64 `yaml:"max_velocity"`     // Hard cap on rope velocity, 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string means "use the config's own difficulty".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports every value that would break the simulation.
func (c RopeJumpConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Character.Height <= 0 {
		errs = append(errs, fmt.Errorf("character: height must be positive, got %g", c.Character.Height))
	}
	if c.Character.RestingBottomY <= c.Character.Height {
		errs = append(errs, fmt.Errorf("character: resting_bottom_y %g leaves no room for height %g",
			c.Character.RestingBottomY, c.Character.Height))
	}
	if c.Physics.JumpStrength >= 0 {
		errs = append(errs, fmt.Errorf("physics: jump_strength must be negative (up), got %g", c.Physics.JumpStrength))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics: gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Rope.Samples < 2 {
		errs = append(errs, fmt.Errorf("rope: samples must be at least 2, got %d", c.Rope.Samples))
	}
	if c.Rope.Velocity <= 0 || c.Rope.Velocity > 1 {
		errs = append(errs, fmt.Errorf("rope: velocity must be in (0, 1], got %g", c.Rope.Velocity))
	}
	if c.Judge.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("judge: tolerance must be positive, got %g", c.Judge.Tolerance))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid rope jump config: %w", errors.Join(errs...))
}
