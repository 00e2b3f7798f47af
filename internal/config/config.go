// Package config provides YAML-based tunables loading, validation and
// difficulty management for the flappy simulation.
package config

import "github.com/vovakirdan/tui-flappy/internal/core"

// Config contains every tunable of the simulation.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Height       float64 `yaml:"height"`        // Logical height, constant for the session
	DefaultWidth float64 `yaml:"default_width"` // Width before the first display size is known
	FloorHeight  float64 `yaml:"floor_height"`
}

// PhysicsConfig defines actor dynamics.
type PhysicsConfig struct {
	Gravity      float64    `yaml:"gravity"`       // Vertical acceleration, negative = down
	FlapStrength float64    `yaml:"flap_strength"` // Velocity set by a flap
	Tilt         TiltConfig `yaml:"tilt"`
}

// TiltConfig defines the visual tilt response to velocity.
type TiltConfig struct {
	MaxUp       float64 `yaml:"max_up"`       // Radians, ~28 degrees
	MaxDown     float64 `yaml:"max_down"`     // Radians, ~68 degrees down
	Speed       float64 `yaml:"speed"`        // Smoothing rate per second
	FallDivisor float64 `yaml:"fall_divisor"` // Falling velocity that maps to 1 rad of tilt
}

// ActorConfig defines the actor hitbox and spawn point.
type ActorConfig struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ObstacleConfig defines obstacle geometry and pacing.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`   // World units per second
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between pairs
	GapMargin     float64 `yaml:"gap_margin"`     // Vertical slack kept out of the gap center range
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Gap          GapConfig         `yaml:"gap"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score (or ticks) at which max difficulty is reached
}

// GapConfig defines how gap bounds collapse as difficulty rises.
type GapConfig struct {
	StartMin float64 `yaml:"start_min"`
	StartMax float64 `yaml:"start_max"`
	End      float64 `yaml:"end"` // Both bounds at full difficulty
}

// EffectsConfig groups the visual feedback tunables.
type EffectsConfig struct {
	Shake          ShakeConfig         `yaml:"shake"`
	DeathFlash     FlashConfig         `yaml:"death_flash"`
	ScoreFlash     EdgeFlashConfig     `yaml:"score_flash"`
	FlapParticles  FlapParticleConfig  `yaml:"flap_particles"`
	DeathParticles DeathParticleConfig `yaml:"death_particles"`
	Particles      ParticleConfig      `yaml:"particles"`
	Squash         SquashConfig        `yaml:"squash"`
	ScorePop       ScorePopConfig      `yaml:"score_pop"`
}

// ShakeConfig defines the camera shake raised on death.
type ShakeConfig struct {
	Duration  float64 `yaml:"duration"`
	Intensity float64 `yaml:"intensity"` // Max offset in world units
	Frequency float64 `yaml:"frequency"` // Radians per second of the base wave
}

// FlashConfig defines a full-screen color flash.
type FlashConfig struct {
	Duration float64  `yaml:"duration"`
	Color    core.RGB `yaml:"color"`
	Alpha    float64  `yaml:"alpha"`
}

// EdgeFlashConfig defines the border flash raised on score.
type EdgeFlashConfig struct {
	Duration    float64  `yaml:"duration"`
	Color       core.RGB `yaml:"color"`
	Alpha       float64  `yaml:"alpha"`
	BorderWidth float64  `yaml:"border_width"` // World units from each edge
	Strips      int      `yaml:"strips"`       // Concentric strips per edge
	SolidRatio  float64  `yaml:"solid_ratio"`  // Fraction of the border at full opacity
}

// FlapParticleConfig defines the puff emitted on each flap.
type FlapParticleConfig struct {
	CountMin int      `yaml:"count_min"`
	CountMax int      `yaml:"count_max"`
	Lifetime float64  `yaml:"lifetime"`
	SizeMin  float64  `yaml:"size_min"`
	SizeMax  float64  `yaml:"size_max"`
	Color    core.RGB `yaml:"color"`
}

// DeathParticleConfig defines the radial burst emitted on death.
type DeathParticleConfig struct {
	Count    int        `yaml:"count"`
	Speed    float64    `yaml:"speed"`
	Lifetime float64    `yaml:"lifetime"`
	SizeMin  float64    `yaml:"size_min"`
	SizeMax  float64    `yaml:"size_max"`
	Colors   []core.RGB `yaml:"colors"`
}

// ParticleConfig defines shared particle behavior.
type ParticleConfig struct {
	Damping   float64 `yaml:"damping"`    // Velocity multiplier applied each tick
	GrowPhase float64 `yaml:"grow_phase"` // Fraction of life spent growing
}

// SquashConfig defines the actor deformation on flap.
type SquashConfig struct {
	Duration     float64 `yaml:"duration"`
	SquashScale  float64 `yaml:"squash_scale"`  // Horizontal scale at the start
	StretchScale float64 `yaml:"stretch_scale"` // Vertical scale at the start
}

// ScorePopConfig defines the score text bounce.
type ScorePopConfig struct {
	Duration float64 `yaml:"duration"`
	Scale    float64 `yaml:"scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means none.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
