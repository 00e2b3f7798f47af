package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/effects"
)

// Actor is the player-controlled square.
type Actor struct {
	Velocity float64   // Vertical, positive = up
	Pos      core.Vec2 // Center
	Tilt     float64   // Visual rotation in radians
	Size     float64
	Squash   effects.Anim
}

func newActor(cfg config.ActorConfig) *Actor {
	a := &Actor{Size: cfg.Size}
	a.reset(cfg)
	return a
}

func (a *Actor) reset(cfg config.ActorConfig) {
	a.Velocity = 0
	a.Pos = core.V(cfg.StartX, cfg.StartY)
	a.Tilt = 0
	a.Squash = effects.Anim{}
}

// Box returns the actor's hitbox.
func (a *Actor) Box() core.Box {
	return core.Square(a.Pos, a.Size)
}

// Flap sets the vertical velocity. It overwrites, never adds.
func (a *Actor) Flap(strength float64) {
	a.Velocity = strength
}

// Integrate applies gravity then moves the actor (semi-implicit Euler).
func (a *Actor) Integrate(gravity, dt float64) {
	a.Velocity += gravity * dt
	a.Pos.Y += a.Velocity * dt
}

// UpdateTilt eases the tilt toward the target for the current velocity.
func (a *Actor) UpdateTilt(p config.PhysicsConfig, dt float64) {
	target := TiltTarget(a.Velocity, p)
	a.Tilt += (target - a.Tilt) * p.Tilt.Speed * dt
}

// TiltTarget maps vertical velocity to a nose angle. Rising tilts up in
// proportion to flap strength; falling tilts down, capped at MaxDown.
func TiltTarget(velocity float64, p config.PhysicsConfig) float64 {
	if velocity > 0 {
		return velocity / p.FlapStrength * p.Tilt.MaxUp
	}
	return core.ClampF(velocity/p.Tilt.FallDivisor, p.Tilt.MaxDown, 0)
}
