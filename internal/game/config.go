package game

import (
	"errors"
	"fmt"
)

// MatchRounds is the number of rounds in a match. Each round is one player
// kick followed by one AI kick.
const MatchRounds = 5

const (
	defaultAnimationFrames  = 60   // 1s at 60 TPS
	defaultReflexSaveChance = 0.10 // keeper's special ability
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid match config")

// Config holds the tunables of a match.
type Config struct {
	// AnimationFrames is the number of ticks a kick animates before it is
	// resolved. Resolution fires on the first tick the timer exceeds it.
	AnimationFrames int
	// ReflexSaveChance is the per-kick probability of the reflex save.
	ReflexSaveChance float64
}

// DefaultConfig returns the standard match settings.
func DefaultConfig() Config {
	return Config{
		AnimationFrames:  defaultAnimationFrames,
		ReflexSaveChance: defaultReflexSaveChance,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	if c.AnimationFrames < 0 {
		return fmt.Errorf("animation frames %d must be >= 0: %w", c.AnimationFrames, ErrInvalidConfig)
	}
	if c.ReflexSaveChance < 0 || c.ReflexSaveChance > 1 {
		return fmt.Errorf("reflex save chance %.3f must be within [0,1]: %w", c.ReflexSaveChance, ErrInvalidConfig)
	}
	return nil
}

// Randomizer is the source of every random draw the engine makes.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}
