package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Environment variables prefixed with REEL_ override file values (see [ApplyEnv]).
type Config struct {
	Database DatabaseConfig `toml:"database" envPrefix:"DB_"`
	Carousel CarouselConfig `toml:"carousel"`
	Player   PlayerConfig   `toml:"player" envPrefix:"PLAYER_"`
	Log      LogConfig      `toml:"log" envPrefix:"LOG_"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path" env:"PATH"`
	MaxOpenConns int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
}

// CarouselConfig contains carousel timing and layout settings.
type CarouselConfig struct {
	SettleDelayMS int     `toml:"settle_delay_ms" env:"SETTLE_DELAY_MS"`
	Visible       int     `toml:"visible" env:"VISIBLE"`
	AdvanceRate   float64 `toml:"advance_rate" env:"ADVANCE_RATE"`
}

// SettleDelay returns the wrap correction delay as a [time.Duration].
func (c CarouselConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// PlayerConfig contains simulated playback settings.
type PlayerConfig struct {
	Autoplay            bool `toml:"autoplay" env:"AUTOPLAY"`
	DefaultTrackSeconds int  `toml:"default_track_seconds" env:"DEFAULT_TRACK_SECONDS"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// ApplyEnv overrides config values from REEL_* environment variables,
// e.g. REEL_DB_PATH, REEL_SETTLE_DELAY_MS, REEL_LOG_LEVEL.
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: "REEL_"}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks values the carousel and database cannot work without.
func (c *Config) Validate() error {
	switch {
	case c.Database.Path == "":
		return fmt.Errorf("%w: database.path is empty", ErrInvalidConfig)
	case c.Carousel.SettleDelayMS <= 0:
		return fmt.Errorf("%w: carousel.settle_delay_ms must be positive", ErrInvalidConfig)
	case c.Carousel.Visible < 1 || c.Carousel.Visible%2 == 0:
		return fmt.Errorf("%w: carousel.visible must be a positive odd number", ErrInvalidConfig)
	case c.Carousel.AdvanceRate <= 0:
		return fmt.Errorf("%w: carousel.advance_rate must be positive", ErrInvalidConfig)
	case c.Player.DefaultTrackSeconds <= 0:
		return fmt.Errorf("%w: player.default_track_seconds must be positive", ErrInvalidConfig)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
