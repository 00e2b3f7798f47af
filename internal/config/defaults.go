package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
// Values mirror defaults/flappy.yaml.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Height:       600,
			DefaultWidth: 400,
			FloorHeight:  50,
		},
		Physics: PhysicsConfig{
			Gravity:      -800,
			FlapStrength: 350,
			Tilt: TiltConfig{
				MaxUp:       0.5,
				MaxDown:     -1.2,
				Speed:       5,
				FallDivisor: 500,
			},
		},
		Actor: ActorConfig{
			Size:   30,
			StartX: -50,
			StartY: 0,
		},
		Obstacles: ObstacleConfig{
			Width:         60,
			ScrollSpeed:   150,
			SpawnInterval: 2.0,
			GapMargin:     100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Gap: GapConfig{
				StartMin: 130,
				StartMax: 180,
				End:      110,
			},
		},
		Effects: EffectsConfig{
			Shake: ShakeConfig{
				Duration:  0.3,
				Intensity: 12,
				Frequency: 50,
			},
			DeathFlash: FlashConfig{
				Duration: 0.3,
				Color:    core.RGB{R: 1.0, G: 0.2, B: 0.2},
				Alpha:    0.6,
			},
			ScoreFlash: EdgeFlashConfig{
				Duration:    0.15,
				Color:       core.RGB{R: 1.0, G: 0.84, B: 0.0},
				Alpha:       0.3,
				BorderWidth: 40,
				Strips:      8,
				SolidRatio:  0.25,
			},
			FlapParticles: FlapParticleConfig{
				CountMin: 4,
				CountMax: 7,
				Lifetime: 0.5,
				SizeMin:  6,
				SizeMax:  12,
				Color:    core.RGB{R: 1.0, G: 1.0, B: 1.0},
			},
			DeathParticles: DeathParticleConfig{
				Count:    24,
				Speed:    260,
				Lifetime: 0.8,
				SizeMin:  4,
				SizeMax:  10,
				Colors: []core.RGB{
					{R: 1.0, G: 0.8, B: 0.0},
					{R: 1.0, G: 0.5, B: 0.0},
					{R: 1.0, G: 0.25, B: 0.1},
					{R: 1.0, G: 1.0, B: 1.0},
				},
			},
			Particles: ParticleConfig{
				Damping:   0.98,
				GrowPhase: 0.15,
			},
			Squash: SquashConfig{
				Duration:     0.3,
				SquashScale:  0.8,
				StretchScale: 1.25,
			},
			ScorePop: ScorePopConfig{
				Duration: 0.3,
				Scale:    1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
