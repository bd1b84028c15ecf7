// ABOUTME: Loads engine settings from an optional YAML file and PONG_* environment overrides.
// ABOUTME: Absent keys keep engine.DefaultConfig values; the result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/pong/engine"
)

// Settings is everything the pong binary needs at startup.
type Settings struct {
	Engine engine.Config
	Seed   *uint64 // nil means seed from the OS
}

// File is the on-disk YAML layout. Pointer fields distinguish "absent" from
// an explicit zero.
type File struct {
	Arena struct {
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
	} `yaml:"arena"`
	Paddle struct {
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
		Inset  *float64 `yaml:"inset"`
	} `yaml:"paddle"`
	Ball struct {
		Radius       *float64 `yaml:"radius"`
		DefaultSpeed *float64 `yaml:"default_speed"`
		MaxSpeed     *float64 `yaml:"max_speed"`
		JitterMin    *float64 `yaml:"jitter_min"`
		JitterMax    *float64 `yaml:"jitter_max"`
	} `yaml:"ball"`
	Match struct {
		VictoryScore *int    `yaml:"victory_score"`
		PlayerName   *string `yaml:"player_name"`
		ComputerName *string `yaml:"computer_name"`
	} `yaml:"match"`
	TickRate *int    `yaml:"tick_rate"`
	Seed     *uint64 `yaml:"seed"`
}

// DefaultPath returns $XDG_CONFIG_HOME/pong/config.yaml, falling back to
// ~/.config/pong/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pong", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "pong", "config.yaml"), nil
}

// Load builds Settings from defaults, then the YAML file at path, then the
// environment. An empty path skips the file. When required is false a
// missing file is not an error.
func Load(path string, required bool) (Settings, error) {
	s := Settings{Engine: engine.DefaultConfig()}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var f File
			if err := yaml.Unmarshal(data, &f); err != nil {
				return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			f.apply(&s)
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnv(&s); err != nil {
		return Settings{}, err
	}

	if err := s.Engine.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// apply overlays the fields present in f onto s.
func (f File) apply(s *Settings) {
	c := &s.Engine
	setFloat(&c.ArenaWidth, f.Arena.Width)
	setFloat(&c.ArenaHeight, f.Arena.Height)
	setFloat(&c.PaddleWidth, f.Paddle.Width)
	setFloat(&c.PaddleHeight, f.Paddle.Height)
	setFloat(&c.PaddleInset, f.Paddle.Inset)
	setFloat(&c.BallRadius, f.Ball.Radius)
	setFloat(&c.DefaultSpeed, f.Ball.DefaultSpeed)
	setFloat(&c.MaxSpeed, f.Ball.MaxSpeed)
	setFloat(&c.JitterMin, f.Ball.JitterMin)
	setFloat(&c.JitterMax, f.Ball.JitterMax)
	if f.Match.VictoryScore != nil {
		c.VictoryScore = *f.Match.VictoryScore
	}
	if f.Match.PlayerName != nil {
		c.PlayerName = *f.Match.PlayerName
	}
	if f.Match.ComputerName != nil {
		c.ComputerName = *f.Match.ComputerName
	}
	if f.TickRate != nil {
		c.TickRate = *f.TickRate
	}
	if f.Seed != nil {
		seed := *f.Seed
		s.Seed = &seed
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// applyEnv reads PONG_* overrides. Malformed numbers are reported rather
// than silently ignored.
func applyEnv(s *Settings) error {
	c := &s.Engine
	if err := getEnvInt("PONG_VICTORY_SCORE", &c.VictoryScore); err != nil {
		return err
	}
	if err := getEnvInt("PONG_TICK_RATE", &c.TickRate); err != nil {
		return err
	}
	if err := getEnvFloat("PONG_DEFAULT_SPEED", &c.DefaultSpeed); err != nil {
		return err
	}
	if err := getEnvFloat("PONG_MAX_SPEED", &c.MaxSpeed); err != nil {
		return err
	}
	getEnv("PONG_PLAYER_NAME", &c.PlayerName)
	getEnv("PONG_COMPUTER_NAME", &c.ComputerName)

	if value := os.Getenv("PONG_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("PONG_SEED: %w", err)
		}
		s.Seed = &seed
	}
	return nil
}

func getEnv(key string, dst *string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func getEnvInt(key string, dst *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func getEnvFloat(key string, dst *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
