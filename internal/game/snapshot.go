package game

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/effects"
)

// ActorView is the renderable actor state.
type ActorView struct {
	Pos      core.Vec2
	Rotation float64   // Radians, positive = nose up
	Scale    core.Vec2 // Squash/stretch, (1, 1) at rest
	Size     float64
}

// Overlay is a full-screen tint.
type Overlay struct {
	Color core.RGB
	Alpha float64
}

// StripView is one edge flash strip ready to draw.
type StripView struct {
	Rect  core.Box
	Color core.RGB
	Alpha float64
}

// ParticleView is one particle ready to draw. Size already includes the
// particle's life-cycle scale.
type ParticleView struct {
	Pos   core.Vec2
	Size  float64
	Color core.RGB
	Kind  effects.ParticleKind
}

// Snapshot is a value copy of everything the host needs to draw a frame.
type Snapshot struct {
	Mode        Mode
	Viewport    Viewport
	FloorHeight float64

	HasActor  bool
	Actor     ActorView
	Obstacles []Obstacle

	Score      int
	ScoreText  string
	ScoreScale float64

	ShakeOffset core.Vec2
	Flash       Overlay
	EdgeStrips  []StripView // Empty while the edge flash is inactive
	Particles   []ParticleView

	Instruction string
}

// Snapshot captures the current frame.
func (s *Sim) Snapshot() Snapshot {
	fx := s.cfg.Effects
	snap := Snapshot{
		Mode:        s.mode,
		Viewport:    s.viewport,
		FloorHeight: s.cfg.World.FloorHeight,
		Obstacles:   append([]Obstacle(nil), s.obstacles...),
		Score:       s.score,
		ScoreText:   strconv.Itoa(s.score),
		ScoreScale:  effects.PopScale(s.fx.scorePop, fx.ScorePop.Scale),
		ShakeOffset: s.fx.shake.Offset,
		Instruction: Instruction(s.mode, s.method),
	}

	if a := s.actor; a != nil {
		snap.HasActor = true
		snap.Actor = ActorView{
			Pos:      a.Pos,
			Rotation: a.Tilt,
			Scale:    effects.SquashScale(a.Squash, fx.Squash.SquashScale, fx.Squash.StretchScale),
			Size:     a.Size,
		}
	}

	if s.fx.flash.Active() {
		snap.Flash = Overlay{Color: s.fx.flash.Color, Alpha: s.fx.flash.Alpha()}
	}

	if edge := s.fx.edge; edge.Active() {
		strips := edge.Strips()
		snap.EdgeStrips = make([]StripView, 0, len(strips))
		for _, st := range strips {
			snap.EdgeStrips = append(snap.EdgeStrips, StripView{
				Rect:  st.Rect,
				Color: edge.Color,
				Alpha: edge.StripAlpha(st),
			})
		}
	}

	particles := s.fx.particles.All()
	snap.Particles = make([]ParticleView, 0, len(particles))
	for _, p := range particles {
		snap.Particles = append(snap.Particles, ParticleView{
			Pos:   p.Pos,
			Size:  p.Size * p.Scale(fx.Particles.GrowPhase),
			Color: p.Color,
			Kind:  p.Kind,
		})
	}

	return snap
}
