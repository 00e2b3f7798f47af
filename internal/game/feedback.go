package game

import (
	"github.com/vovakirdan/tui-flappy/internal/effects"
)

// feedback holds the visual effect state driven by gameplay events.
type feedback struct {
	shake     effects.Shake
	flash     effects.Fade
	edge      *effects.EdgeFlash
	particles *effects.Particles
	scorePop  effects.Anim
}

// triggerEffects maps this tick's events onto effect resources.
func (s *Sim) triggerEffects() {
	fx := s.cfg.Effects
	for _, e := range s.events.Events() {
		switch e.Kind {
		case EventFlap:
			s.fx.particles.EmitFlap(e.Pos, s.cfg.Obstacles.ScrollSpeed, s.rng)
			if s.actor != nil {
				s.actor.Squash.Start(fx.Squash.Duration)
			}
		case EventScored:
			s.fx.edge.Trigger()
			s.fx.scorePop.Start(fx.ScorePop.Duration)
		case EventDied:
			s.fx.shake.Trigger(fx.Shake.Duration, fx.Shake.Intensity, fx.Shake.Frequency)
			s.fx.flash.Trigger(fx.DeathFlash.Duration, fx.DeathFlash.Color, fx.DeathFlash.Alpha)
			s.fx.particles.EmitDeath(e.Pos, s.rng)
		}
	}
}

// updateEffects decays every effect. It runs every tick in every mode.
func (s *Sim) updateEffects(dt float64) {
	s.fx.shake.Update(dt, s.rng)
	s.fx.flash.Update(dt)
	s.fx.edge.Update(dt)
	s.fx.particles.Update(dt, s.mode == ModePlaying)
	s.fx.scorePop.Update(dt)
	if s.actor != nil {
		s.actor.Squash.Update(dt)
	}
}
