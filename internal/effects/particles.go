// Package effects implements the visual feedback primitives of the flappy
// simulation: decaying overlays, camera shake, particle bursts, edge flash
// strips and elastic scale animations. Nothing here affects gameplay.
package effects

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ParticleKind identifies which burst a particle belongs to.
type ParticleKind int

const (
	ParticleFlap ParticleKind = iota
	ParticleDeath
)

// Particle is a short-lived cosmetic dot.
type Particle struct {
	Pos             core.Vec2
	Velocity        core.Vec2 // Local drift, damped every tick
	WorldVelocity   core.Vec2 // Applied only while the world scrolls
	Lifetime        float64   // Remaining seconds
	InitialLifetime float64
	Size            float64
	Color           core.RGB
	Kind            ParticleKind
}

// Scale returns the visual scale: a quick ease-out growth over the first
// growPhase of life, then a linear shrink to zero.
func (p Particle) Scale(growPhase float64) float64 {
	if p.InitialLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	life := core.ClampF(p.Lifetime/p.InitialLifetime, 0, 1)
	if life > 1-growPhase {
		return core.EaseOutQuad((1 - life) / growPhase)
	}
	return life / (1 - growPhase)
}

// Particles owns every live particle.
type Particles struct {
	list  []Particle
	cfg   config.EffectsConfig
	actor float64 // Actor size, used to offset flap puffs below center
}

// NewParticles creates an empty particle set.
func NewParticles(cfg config.EffectsConfig, actorSize float64) *Particles {
	return &Particles{
		list:  make([]Particle, 0, 64),
		cfg:   cfg,
		actor: actorSize,
	}
}

// All returns the live particles. The slice must not be modified.
func (ps *Particles) All() []Particle {
	return ps.list
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.list)
}

// Clear removes every particle.
func (ps *Particles) Clear() {
	ps.list = ps.list[:0]
}

// EmitFlap spawns a small puff around pos that drifts with the world.
func (ps *Particles) EmitFlap(pos core.Vec2, scrollSpeed float64, rng core.Source) int {
	fc := ps.cfg.FlapParticles
	count := fc.CountMin + int(rng.Float64()*float64(fc.CountMax-fc.CountMin+1))
	count = core.Clamp(count, fc.CountMin, fc.CountMax)
	if count <= 0 {
		return 0
	}

	base := rng.Float64() * 2 * math.Pi
	for i := 0; i < count; i++ {
		angle := base + float64(i)/float64(count)*2*math.Pi + (rng.Float64()-0.5)*0.6
		cos, sin := math.Cos(angle), math.Sin(angle)

		dist := 5 + rng.Float64()*8
		drift := 10 + rng.Float64()*15

		ps.list = append(ps.list, Particle{
			Pos: core.Vec2{
				X: pos.X + cos*dist,
				Y: pos.Y + sin*dist - ps.actor*0.3,
			},
			Velocity: core.Vec2{
				X: cos*drift + (rng.Float64()-0.5)*8,
				Y: sin*drift - 3,
			},
			WorldVelocity:   core.Vec2{X: -scrollSpeed},
			Lifetime:        fc.Lifetime * (0.7 + rng.Float64()*0.3),
			InitialLifetime: fc.Lifetime,
			Size:            core.Range(rng, fc.SizeMin, fc.SizeMax),
			Color:           fc.Color,
			Kind:            ParticleFlap,
		})
	}
	return count
}

// EmitDeath spawns a radial burst at pos. Death particles stay put
// relative to the screen.
func (ps *Particles) EmitDeath(pos core.Vec2, rng core.Source) int {
	dc := ps.cfg.DeathParticles
	if len(dc.Colors) == 0 {
		return 0
	}

	for i := 0; i < dc.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := dc.Speed * (0.3 + rng.Float64()*0.7)
		size := core.Range(rng, dc.SizeMin, dc.SizeMax)
		idx := core.Clamp(int(rng.Float64()*float64(len(dc.Colors))), 0, len(dc.Colors)-1)

		ps.list = append(ps.list, Particle{
			Pos: pos,
			Velocity: core.Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle) * speed * 1.5,
			},
			Lifetime:        dc.Lifetime * (0.6 + rng.Float64()*0.4),
			InitialLifetime: dc.Lifetime,
			Size:            size,
			Color:           dc.Colors[idx],
			Kind:            ParticleDeath,
		})
	}
	return dc.Count
}

// Update ages, moves and damps every particle, dropping expired ones.
// World velocity applies only when scrolling is true.
func (ps *Particles) Update(dt float64, scrolling bool) {
	damping := ps.cfg.Particles.Damping
	alive := ps.list[:0]
	for _, p := range ps.list {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}

		p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
		if scrolling {
			p.Pos = p.Pos.Add(p.WorldVelocity.Scale(dt))
		}
		p.Velocity = p.Velocity.Scale(damping)

		alive = append(alive, p)
	}
	ps.list = alive
}
