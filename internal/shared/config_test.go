package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./reel.db" {
			t.Errorf("expected database path ./reel.db, got %s", config.Database.Path)
		}

		if config.Carousel.SettleDelay() != 500*time.Millisecond {
			t.Errorf("expected settle delay 500ms, got %v", config.Carousel.SettleDelay())
		}

		if config.Carousel.Visible != 5 {
			t.Errorf("expected 5 visible slots, got %d", config.Carousel.Visible)
		}

		if !config.Player.Autoplay {
			t.Error("expected autoplay to default to true")
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		testConfig := `[database]
path = "/custom/path.db"

[carousel]
settle_delay_ms = 250
visible = 7

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Carousel.SettleDelay() != 250*time.Millisecond {
			t.Errorf("expected settle delay 250ms, got %v", config.Carousel.SettleDelay())
		}
		if config.Carousel.Visible != 7 {
			t.Errorf("expected 7 visible slots, got %d", config.Carousel.Visible)
		}
		if config.Carousel.AdvanceRate != 12 {
			t.Errorf("missing keys should keep defaults, advance_rate = %v", config.Carousel.AdvanceRate)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}
	})

	t.Run("LoadConfig errors", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}

		bad := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(bad, []byte("[carousel\nvisible ="), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(bad); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv("REEL_DB_PATH", "/env/reel.db")
		t.Setenv("REEL_SETTLE_DELAY_MS", "750")
		t.Setenv("REEL_LOG_LEVEL", "warn")

		config := DefaultConfig()
		if err := ApplyEnv(config); err != nil {
			t.Fatalf("ApplyEnv: %v", err)
		}

		if config.Database.Path != "/env/reel.db" {
			t.Errorf("expected env database path, got %s", config.Database.Path)
		}
		if config.Carousel.SettleDelayMS != 750 {
			t.Errorf("expected settle delay 750, got %d", config.Carousel.SettleDelayMS)
		}
		if config.Log.Level != "warn" {
			t.Errorf("expected log level warn, got %s", config.Log.Level)
		}
		if config.Carousel.Visible != 5 {
			t.Errorf("unset variables should keep values, visible = %d", config.Carousel.Visible)
		}
	})

	t.Run("ApplyEnv invalid value", func(t *testing.T) {
		t.Setenv("REEL_VISIBLE", "many")
		if err := ApplyEnv(DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{"empty database path", func(c *Config) { c.Database.Path = "" }},
			{"zero settle delay", func(c *Config) { c.Carousel.SettleDelayMS = 0 }},
			{"even visible", func(c *Config) { c.Carousel.Visible = 4 }},
			{"zero visible", func(c *Config) { c.Carousel.Visible = 0 }},
			{"zero advance rate", func(c *Config) { c.Carousel.AdvanceRate = 0 }},
			{"zero track length", func(c *Config) { c.Player.DefaultTrackSeconds = 0 }},
			{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
