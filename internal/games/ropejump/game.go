// Package ropejump implements a rope-jumping game: a character swings a rope
// over its head and under its feet and has to jump each time it comes down.
//
// The engine (Rig, Rope, Judge, Score, Session) works in a fixed virtual
// world measured in pixels with Y growing downward. Game adapts a Session to
// the registry.Game interface and maps the world onto the terminal grid.
package ropejump

import (
	"github.com/vovakirdan/tui-ropejump/internal/config"
	"github.com/vovakirdan/tui-ropejump/internal/core"
	"github.com/vovakirdan/tui-ropejump/internal/registry"
)

// Mode is a registered variant of the game.
type Mode struct {
	ID    string
	Title string
	Rush  bool // Rope speed grows with the score
}

// Registered modes.
var (
	ModeClassic = Mode{ID: "ropejump", Title: "Rope Jump"}
	ModeRush    = Mode{ID: "ropejump_rush", Title: "Rope Rush", Rush: true}
)

// Modes returns every registered mode in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeRush}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
// An empty string keeps the config's own difficulty.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Game implements registry.Game on top of a Session.
type Game struct {
	mode      Mode
	runtime   core.RuntimeConfig
	cfg       config.RopeJumpConfig
	session   *Session
	particles *ParticleSystem
	frame     Frame // Last simulated frame
	paused    bool
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRopeJump(configPath)
	if err != nil {
		cfg = config.DefaultRopeJumpConfig()
	}
	g.resetWith(cfg)
}

// resetWith starts a new session from an already loaded config.
func (g *Game) resetWith(cfg config.RopeJumpConfig) {
	if g.mode.Rush {
		cfg.Difficulty.Enabled = true
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.session = NewSession(cfg)
	if g.particles == nil {
		g.particles = NewParticleSystem(g.runtime.Seed)
	} else {
		g.particles.Reset(g.runtime.Seed)
	}
	g.frame = Frame{RopeY: NoRopeY, FeetY: g.session.Rig().FeetY(), TopY: g.session.Rig().TopY()}
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	f := g.session.Step(in.Has(core.ActionJump))
	g.frame = f
	g.particles.Update()

	var events []core.Event
	if f.Jumped {
		events = append(events, core.EventJump)
	}
	if f.Landed {
		events = append(events, core.EventLand)
		g.particles.Dust(g.session.Rig().Position())
	}
	if f.Scored {
		events = append(events, core.EventScore)
		g.particles.Sparks(core.Vec2{X: g.cfg.Character.CenterX, Y: f.RopeY})
	}
	if f.Collided {
		events = append(events, core.EventCollision)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying engine.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the effective config of the current session.
func (g *Game) Config() config.RopeJumpConfig {
	return g.cfg
}

// Register every mode with the registry
func init() {
	for _, m := range Modes() {
		m := m
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
