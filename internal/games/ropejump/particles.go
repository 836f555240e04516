package ropejump

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-ropejump/internal/core"
)

// Particle is a short-lived cosmetic dot in world coordinates.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Size     float64
	Life     int // Frames left
	Color    core.Color
}

const (
	dustCount       = 6
	dustLife        = 18
	sparkCount      = 10
	sparkLife       = 24
	particleMax     = 128
	particleGravity = 0.15
)

// ParticleSystem owns every live particle. It never touches game state.
type ParticleSystem struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty system with a deterministic RNG.
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewSource(seed))}
}

// Reset drops all particles and reseeds the RNG.
func (ps *ParticleSystem) Reset(seed int64) {
	ps.rng = rand.New(rand.NewSource(seed))
	ps.particles = ps.particles[:0]
}

// Dust kicks up a puff at the feet on landing.
func (ps *ParticleSystem) Dust(at core.Vec2) {
	for n := 0; n < dustCount; n++ {
		side := 1.0
		if ps.rng.Intn(2) == 0 {
			side = -1
		}
		ps.add(Particle{
			Position: at,
			Velocity: core.Vec2{
				X: side * (1 + ps.rng.Float64()*3),
				Y: -(0.5 + ps.rng.Float64()*1.5),
			},
			Size:  1 + ps.rng.Float64(),
			Life:  dustLife - ps.rng.Intn(6),
			Color: core.ColorBrown,
		})
	}
}

// Sparks bursts outward from the point where the rope was cleared.
func (ps *ParticleSystem) Sparks(at core.Vec2) {
	for i := 0; i < sparkCount; i++ {
		angle := 2*math.Pi*float64(i)/sparkCount + ps.rng.Float64()*0.4
		speed := 3 + ps.rng.Float64()*3
		color := core.ColorBrightYellow
		if i%2 == 1 {
			color = core.ColorOrange
		}
		ps.add(Particle{
			Position: at,
			Velocity: core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     1,
			Life:     sparkLife - ps.rng.Intn(8),
			Color:    color,
		})
	}
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.particles) >= particleMax {
		return
	}
	ps.particles = append(ps.particles, p)
}

// Update moves every particle one frame and removes expired ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Position = p.Position.Add(p.Velocity)
		p.Velocity.Y += particleGravity
		p.Velocity = p.Velocity.Scale(0.95)
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Particles returns the live particles. The slice is only valid until the
// next Update.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}
