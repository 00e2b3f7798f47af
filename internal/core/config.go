package core

// RuntimeConfig contains host parameters passed to the simulation at start.
type RuntimeConfig struct {
	ScreenW  int    // Display width in characters
	ScreenH  int    // Display height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // RNG seed, 0 means seed from wall-clock time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameTime returns the fixed tick length in seconds.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
