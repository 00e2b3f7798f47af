package game

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Role tells which half of a pair an obstacle is.
type Role int

const (
	RoleTop Role = iota
	RoleBottom
)

func (r Role) String() string {
	if r == RoleTop {
		return "Top"
	}
	return "Bottom"
}

// Obstacle is one half of a pipe pair. Only the bottom half carries a
// meaningful Scored flag so each pair scores once.
type Obstacle struct {
	Pos    core.Vec2 // Center
	Width  float64
	Height float64
	Role   Role
	Scored bool
}

// Box returns the obstacle's hitbox.
func (o Obstacle) Box() core.Box {
	return core.Box{Center: o.Pos, W: o.Width, H: o.Height}
}

// GapSpec is the opening of one pair, chosen at spawn time.
type GapSpec struct {
	Size    float64
	CenterY float64
}

// nextGap samples a gap for the current score. The center range keeps
// both stubs at non-negative height.
func (s *Sim) nextGap() GapSpec {
	lo, hi := s.difficulty.GapRange(s.score, s.ticks)
	size := lo + s.rng.Float64()*(hi-lo)

	w := s.cfg.World
	room := s.viewport.Height - w.FloorHeight - size - s.cfg.Obstacles.GapMargin
	center := (s.rng.Float64() - 0.5) * room

	return GapSpec{Size: size, CenterY: center}
}

// pairFor builds the top and bottom obstacles around a gap, just off the
// right edge of the viewport.
func (s *Sim) pairFor(gap GapSpec) (top, bottom Obstacle) {
	halfH := s.viewport.HalfHeight()
	floor := s.cfg.World.FloorHeight
	width := s.cfg.Obstacles.Width
	x := s.viewport.HalfWidth() + width

	topH := halfH - gap.CenterY - gap.Size/2
	top = Obstacle{
		Pos:    core.V(x, halfH-topH/2),
		Width:  width,
		Height: topH,
		Role:   RoleTop,
	}

	bottomH := halfH + gap.CenterY - gap.Size/2 - floor
	bottom = Obstacle{
		Pos:    core.V(x, -halfH+floor+bottomH/2),
		Width:  width,
		Height: bottomH,
		Role:   RoleBottom,
	}
	return top, bottom
}

// spawn adds a new pair.
func (s *Sim) spawn() GapSpec {
	gap := s.nextGap()
	top, bottom := s.pairFor(gap)
	s.obstacles = append(s.obstacles, top, bottom)
	s.log.Debug("spawned obstacle pair", "gap", gap.Size, "center", gap.CenterY, "score", s.score)
	return gap
}

// updateSpawner ticks the spawn timer and spawns one pair on expiry.
func (s *Sim) updateSpawner(dt float64) {
	s.spawnTimer.Tick(dt)
	if s.spawnTimer.JustFinished() {
		s.spawn()
	}
}

// moveObstacles scrolls every obstacle left and drops the ones that have
// left the viewport.
func (s *Sim) moveObstacles(dt float64) {
	dx := s.cfg.Obstacles.ScrollSpeed * dt
	limit := -(s.viewport.HalfWidth() + s.cfg.Obstacles.Width)

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Pos.X -= dx
		if o.Pos.X < limit {
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}
