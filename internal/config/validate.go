package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values that would produce
// nonsensical gameplay: negative obstacle heights, unreachable gaps,
// zero-length timers. All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Height > 0, "world.height must be positive, got %v", w.Height)
	check(w.DefaultWidth > 0, "world.default_width must be positive, got %v", w.DefaultWidth)
	check(w.FloorHeight >= 0 && w.FloorHeight < w.Height,
		"world.floor_height must be in [0, height), got %v", w.FloorHeight)

	p := c.Physics
	check(p.Gravity < 0, "physics.gravity must be negative (downward), got %v", p.Gravity)
	check(p.FlapStrength > 0, "physics.flap_strength must be positive, got %v", p.FlapStrength)
	check(p.Tilt.MaxUp >= 0, "physics.tilt.max_up must be non-negative, got %v", p.Tilt.MaxUp)
	check(p.Tilt.MaxDown <= 0, "physics.tilt.max_down must be non-positive, got %v", p.Tilt.MaxDown)
	check(p.Tilt.Speed >= 0, "physics.tilt.speed must be non-negative, got %v", p.Tilt.Speed)
	check(p.Tilt.FallDivisor > 0, "physics.tilt.fall_divisor must be positive, got %v", p.Tilt.FallDivisor)

	check(c.Actor.Size > 0, "actor.size must be positive, got %v", c.Actor.Size)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive, got %v", o.Width)
	check(o.ScrollSpeed > 0, "obstacles.scroll_speed must be positive, got %v", o.ScrollSpeed)
	check(o.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", o.SpawnInterval)
	// The bottom stub height is (margin - floor)/2 at the lowest gap center.
	check(o.GapMargin >= w.FloorHeight,
		"obstacles.gap_margin (%v) must be at least world.floor_height (%v)", o.GapMargin, w.FloorHeight)

	errs = append(errs, c.Difficulty.validate(c)...)
	errs = append(errs, c.Effects.validate()...)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func (d DifficultyConfig) validate(c Config) []error {
	var errs []error
	g := d.Gap

	if g.StartMin <= 0 || g.StartMax <= 0 || g.End <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.gap bounds must be positive, got start_min=%v start_max=%v end=%v",
			g.StartMin, g.StartMax, g.End))
	}
	if g.StartMin > g.StartMax {
		errs = append(errs, fmt.Errorf("difficulty.gap.start_min (%v) exceeds start_max (%v)", g.StartMin, g.StartMax))
	}

	widest := max(g.StartMax, g.End)
	narrowest := min(g.StartMin, g.End)
	if narrowest <= c.Actor.Size {
		errs = append(errs, fmt.Errorf("difficulty.gap: narrowest gap (%v) leaves no room for actor.size (%v)",
			narrowest, c.Actor.Size))
	}
	// The gap center range is (height - floor - gap - margin); it must not be negative.
	if room := c.World.Height - c.World.FloorHeight - widest - c.Obstacles.GapMargin; room < 0 {
		errs = append(errs, fmt.Errorf("difficulty.gap: widest gap (%v) plus margin does not fit the playfield (short by %v)",
			widest, -room))
	}

	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", d.InitialLevel))
	}
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", d.Progression.Type))
	}
	if d.Progression.Type != "none" && d.Progression.MaxAt <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.progression.max_at must be positive, got %d", d.Progression.MaxAt))
	}
	return errs
}

func (e EffectsConfig) validate() []error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("effects.%s must be positive, got %v", name, v))
		}
	}

	positive("shake.duration", e.Shake.Duration)
	positive("death_flash.duration", e.DeathFlash.Duration)
	positive("score_flash.duration", e.ScoreFlash.Duration)
	positive("score_flash.border_width", e.ScoreFlash.BorderWidth)
	positive("flap_particles.lifetime", e.FlapParticles.Lifetime)
	positive("death_particles.lifetime", e.DeathParticles.Lifetime)
	positive("squash.duration", e.Squash.Duration)
	positive("score_pop.duration", e.ScorePop.Duration)

	if e.ScoreFlash.Strips <= 0 {
		errs = append(errs, fmt.Errorf("effects.score_flash.strips must be positive, got %d", e.ScoreFlash.Strips))
	}
	if e.ScoreFlash.SolidRatio < 0 || e.ScoreFlash.SolidRatio >= 1 {
		errs = append(errs, fmt.Errorf("effects.score_flash.solid_ratio must be in [0, 1), got %v", e.ScoreFlash.SolidRatio))
	}
	if e.FlapParticles.CountMin < 0 || e.FlapParticles.CountMin > e.FlapParticles.CountMax {
		errs = append(errs, fmt.Errorf("effects.flap_particles: invalid count range [%d, %d]",
			e.FlapParticles.CountMin, e.FlapParticles.CountMax))
	}
	if e.DeathParticles.Count < 0 {
		errs = append(errs, fmt.Errorf("effects.death_particles.count must be non-negative, got %d", e.DeathParticles.Count))
	}
	if e.DeathParticles.Count > 0 && len(e.DeathParticles.Colors) == 0 {
		errs = append(errs, errors.New("effects.death_particles.colors must not be empty"))
	}
	if e.Particles.Damping <= 0 || e.Particles.Damping > 1 {
		errs = append(errs, fmt.Errorf("effects.particles.damping must be in (0, 1], got %v", e.Particles.Damping))
	}
	if e.Particles.GrowPhase <= 0 || e.Particles.GrowPhase >= 1 {
		errs = append(errs, fmt.Errorf("effects.particles.grow_phase must be in (0, 1), got %v", e.Particles.GrowPhase))
	}
	return errs
}
