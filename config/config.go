package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Timing configuration for the timeline screen
const (
	// FlickerInterval is how often the ghost flicker tick fires
	FlickerInterval = 2 * time.Second

	// DeadlineDelay is how long after the timeline opens the one-shot
	// deadline alert fires
	DeadlineDelay = 12 * time.Second

	// BannerDuration is how long the deadline banner stays on screen
	BannerDuration = 6 * time.Second
)

// DefaultYears is the span of the generated chronicle
const DefaultYears = 100

// Config holds the runtime settings for the game and its CLI tools.
// Values are built-in defaults overridden by FRACTAL_* environment
// variables; command-line flags override both.
type Config struct {
	// Years is the length of the chronicle; must be a positive multiple of 10
	Years int `env:"FRACTAL_YEARS"`

	// Seed drives the game's random draws (the deadline alert year and
	// the screen shake offsets). 0 means derive from the clock.
	Seed int64 `env:"FRACTAL_SEED"`

	// TablesPath optionally points at a YAML file replacing the built-in
	// lore tables
	TablesPath string `env:"FRACTAL_TABLES"`

	// TuningPath optionally points at a JSON file replacing the built-in
	// combat tuning
	TuningPath string `env:"FRACTAL_TUNING"`

	// Fullscreen toggles fullscreen mode at startup
	Fullscreen bool `env:"FRACTAL_FULLSCREEN"`

	// Mute disables the synthesized sound effects
	Mute bool `env:"FRACTAL_MUTE"`
}

// Load builds a Config from defaults and the environment
func Load() (Config, error) {
	cfg := Config{
		Years: DefaultYears,
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
