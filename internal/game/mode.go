package game

// Mode is the game-mode state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// InputMethod selects the wording of the instruction text.
type InputMethod int

const (
	InputKeyboard InputMethod = iota // Mouse or keyboard
	InputTouch
)

// Instruction returns the prompt shown for a mode, or "" while playing.
func Instruction(m Mode, method InputMethod) string {
	switch m {
	case ModeMenu:
		if method == InputTouch {
			return "Tap to start"
		}
		return "Click or press SPACE to start"
	case ModeGameOver:
		if method == InputTouch {
			return "Game Over!\nTap to restart"
		}
		return "Game Over!\nClick or press SPACE to restart"
	default:
		return ""
	}
}

func (s *Sim) setMode(m Mode) {
	if m == s.mode {
		return
	}
	s.log.Debug("mode transition", "from", s.mode, "to", m, "score", s.score)
	s.mode = m
}

// reset restores the start state: actor at spawn, no obstacles, zero
// score and a full spawn interval.
func (s *Sim) reset() {
	if s.actor != nil {
		s.actor.reset(s.cfg.Actor)
	}
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.ticks = 0
	s.spawnTimer.Reset()
}
