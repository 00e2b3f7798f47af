package game

// updateScore awards one point per bottom obstacle whose center has
// passed the actor, raising Scored for each.
func (s *Sim) updateScore() {
	a := s.actor
	if a == nil {
		return
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Role != RoleBottom || o.Scored || o.Pos.X >= a.Pos.X {
			continue
		}
		o.Scored = true
		s.score++
		s.events.Push(Event{Kind: EventScored})
	}
}
