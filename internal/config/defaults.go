package config

import (
	_ "embed"
)

//go:embed defaults/ropejump.yaml
var defaultRopeJumpYAML []byte

// DefaultRopeJumpConfig returns the default rope jump configuration.
// It mirrors defaults/ropejump.yaml and is used if the embedded file fails to parse.
func DefaultRopeJumpConfig() RopeJumpConfig {
	return RopeJumpConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Character: CharacterConfig{
			CenterX:        400,
			RestingBottomY: 500,
			Height:         120,
			HandOffsetX:    70,
			ShoulderDrop:   40,
			HandSwing:      8,
			HandWobble:     6,
			MaxHandRise:    4,
		},
		Physics: PhysicsConfig{
			JumpStrength: -20,
			Gravity:      1,
		},
		Rope: RopeConfig{
			Samples:         30,
			Velocity:        0.04,
			PhaseStep:       0.05,
			HeadClearance:   40,
			BelowFeetMargin: 30,
			MaxCurveHeight:  24,
			RestCurveHeight: 6,
			Jitter:          4,
		},
		Judge: JudgeConfig{
			Tolerance: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				MaxVelocity:     0.06,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRopeJumpYAML
}
