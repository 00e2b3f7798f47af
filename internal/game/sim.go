// Package game implements the flappy simulation: actor physics, obstacle
// spawning, collision, scoring and the menu/playing/game-over state machine.
// All state lives in a Sim value advanced one tick at a time by the host.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/effects"
)

// Sim is the complete simulation context.
type Sim struct {
	cfg        config.Config
	rng        core.Source
	log        *log.Logger
	difficulty *config.DifficultyManager

	viewport   Viewport
	mode       Mode
	method     InputMethod
	actor      *Actor
	obstacles  []Obstacle
	score      int
	ticks      int // Playing ticks since the last reset
	spawnTimer core.Timer

	events EventQueue
	fx     feedback
}

// New validates cfg and creates a simulation in Menu mode.
// A nil rng seeds an xorshift source from the wall clock; a nil logger
// discards output.
func New(cfg config.Config, rng core.Source, logger *log.Logger) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewXorShift(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := Viewport{Width: cfg.World.DefaultWidth, Height: cfg.World.Height}
	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		log:        logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		viewport:   vp,
		mode:       ModeMenu,
		actor:      newActor(cfg.Actor),
		obstacles:  make([]Obstacle, 0, 16),
		spawnTimer: core.NewTimer(cfg.Obstacles.SpawnInterval, core.TimerRepeating),
		fx: feedback{
			edge:      effects.NewEdgeFlash(cfg.Effects.ScoreFlash, vp.Width, vp.Height),
			particles: effects.NewParticles(cfg.Effects, cfg.Actor.Size),
		},
	}
	return s, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg config.Config, rng core.Source, logger *log.Logger) *Sim {
	s, err := New(cfg, rng, logger)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	return s
}

// Tick advances the simulation by dt seconds. Negative dt counts as 0.
//
// Order within a tick: input, physics and tilt, spawn, move, collide,
// score, mode transition, effect triggers, effect decay.
func (s *Sim) Tick(in core.InputFrame, dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.events.Reset()

	switch s.mode {
	case ModeMenu:
		if in.Has(core.ActionConfirm) {
			s.setMode(ModePlaying)
		}
	case ModePlaying:
		s.stepPlaying(in, dt)
	case ModeGameOver:
		if in.Has(core.ActionConfirm) {
			s.reset()
			s.setMode(ModePlaying)
		}
	}

	s.triggerEffects()
	s.updateEffects(dt)
}

func (s *Sim) stepPlaying(in core.InputFrame, dt float64) {
	s.ticks++

	if a := s.actor; a != nil {
		if in.Has(core.ActionFlap) {
			a.Flap(s.cfg.Physics.FlapStrength)
			s.events.Push(Event{Kind: EventFlap, Pos: a.Pos})
		}
		a.Integrate(s.cfg.Physics.Gravity, dt)
		a.UpdateTilt(s.cfg.Physics, dt)
	}

	s.updateSpawner(dt)
	s.moveObstacles(dt)

	hit := s.detectCollision()
	if hit != CollisionNone {
		s.events.Push(Event{Kind: EventDied, Pos: s.actor.Pos})
	}

	s.updateScore()

	if hit != CollisionNone {
		s.log.Debug("collision", "with", hit, "y", s.actor.Pos.Y)
		s.setMode(ModeGameOver)
	}
}

// Resize fits the viewport to a display of the given size and lays the
// edge flash out again.
func (s *Sim) Resize(displayW, displayH float64) {
	if !s.viewport.Fit(displayW, displayH) {
		return
	}
	s.fx.edge.Layout(s.viewport.Width, s.viewport.Height)
	s.log.Debug("viewport resized", "width", s.viewport.Width, "height", s.viewport.Height)
}

// SetInputMethod selects the instruction wording.
func (s *Sim) SetInputMethod(m InputMethod) {
	s.method = m
}

// Mode returns the current game mode.
func (s *Sim) Mode() Mode {
	return s.mode
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Viewport returns the logical playfield.
func (s *Sim) Viewport() Viewport {
	return s.viewport
}

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() config.Config {
	return s.cfg
}

// Events returns the events raised during the last tick.
func (s *Sim) Events() []Event {
	out := make([]Event, len(s.events.Events()))
	copy(out, s.events.Events())
	return out
}
