package game

// Collision names what the actor hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionCeiling
	CollisionObstacle
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionCeiling:
		return "ceiling"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// detectCollision checks ground, ceiling, then obstacles and returns the
// first hit. Later checks are skipped once one hits.
func (s *Sim) detectCollision() Collision {
	a := s.actor
	if a == nil {
		return CollisionNone
	}

	half := a.Size / 2
	groundTop := -s.viewport.HalfHeight() + s.cfg.World.FloorHeight
	if a.Pos.Y-half <= groundTop {
		return CollisionGround
	}
	if a.Pos.Y+half >= s.viewport.HalfHeight() {
		return CollisionCeiling
	}

	box := a.Box()
	for _, o := range s.obstacles {
		if box.Intersects(o.Box()) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}
