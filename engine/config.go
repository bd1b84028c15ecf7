// ABOUTME: Engine-level constants fixed at match construction: arena, paddles, ball, scoring, tick rate.
// ABOUTME: DefaultConfig reproduces the classic 800x600 layout; Validate rejects geometry the physics cannot honor.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds every constant the simulation needs. A Config is copied into
// the Match at construction and never changes afterward.
type Config struct {
	ArenaWidth   float64
	ArenaHeight  float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // distance between each paddle and its side wall
	BallRadius   float64

	DefaultSpeed float64 // units per tick at rally start
	MaxSpeed     float64 // paddle contacts never push speed above this

	// JitterMin and JitterMax bound the multiplier applied to paddle bounces.
	JitterMin float64
	JitterMax float64

	VictoryScore int
	TickRate     int // nominal ticks per second for the driver

	PlayerName   string
	ComputerName string
}

// DefaultConfig returns the classic layout.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:   800,
		ArenaHeight:  600,
		PaddleWidth:  20,
		PaddleHeight: 100,
		PaddleInset:  40,
		BallRadius:   8,
		DefaultSpeed: 10,
		MaxSpeed:     20,
		JitterMin:    0.9,
		JitterMax:    1.1,
		VictoryScore: 1,
		TickRate:     60,
		PlayerName:   "Player",
		ComputerName: "Computer",
	}
}

// TickInterval returns the wall-clock spacing between ticks at TickRate.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks that the config describes a playable arena. The physics
// relies on the arena being wider than the ball so that at most one side can
// score per tick.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"arena width":   c.ArenaWidth,
		"arena height":  c.ArenaHeight,
		"paddle width":  c.PaddleWidth,
		"paddle height": c.PaddleHeight,
		"paddle inset":  c.PaddleInset,
		"ball radius":   c.BallRadius,
		"default speed": c.DefaultSpeed,
		"max speed":     c.MaxSpeed,
		"jitter min":    c.JitterMin,
		"jitter max":    c.JitterMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, name)
		}
	}

	switch {
	case c.ArenaWidth <= 0 || c.ArenaHeight <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must have positive size, got %vx%v", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleInset < 0:
		return fmt.Errorf("%w: paddle inset must not be negative, got %v", ErrInvalidConfig, c.PaddleInset)
	case 2*(c.PaddleInset+c.PaddleWidth) > c.ArenaWidth:
		return fmt.Errorf("%w: paddles do not fit in arena width %v", ErrInvalidConfig, c.ArenaWidth)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidConfig, c.BallRadius)
	case c.ArenaWidth <= 2*c.BallRadius || c.ArenaHeight <= 2*c.BallRadius:
		return fmt.Errorf("%w: arena must be larger than the ball", ErrInvalidConfig)
	case c.DefaultSpeed < 0:
		return fmt.Errorf("%w: default speed must not be negative, got %v", ErrInvalidConfig, c.DefaultSpeed)
	case c.MaxSpeed < c.DefaultSpeed:
		return fmt.Errorf("%w: max speed %v is below default speed %v", ErrInvalidConfig, c.MaxSpeed, c.DefaultSpeed)
	case c.JitterMin <= 0 || c.JitterMax < c.JitterMin:
		return fmt.Errorf("%w: jitter range [%v, %v] is empty or not positive", ErrInvalidConfig, c.JitterMin, c.JitterMax)
	case c.VictoryScore < 1:
		return fmt.Errorf("%w: victory score must be at least 1, got %d", ErrInvalidConfig, c.VictoryScore)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tick rate must be at least 1, got %d", ErrInvalidConfig, c.TickRate)
	case c.PlayerName == "" || c.ComputerName == "":
		return fmt.Errorf("%w: actor names must not be empty", ErrInvalidConfig)
	case c.PlayerName == c.ComputerName:
		return fmt.Errorf("%w: actor names must differ, both are %q", ErrInvalidConfig, c.PlayerName)
	}
	return nil
}
