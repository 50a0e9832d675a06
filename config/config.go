// Package config loads vi-pong settings from a TOML file with VIPONG_* environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-pong/constants"
)

const (
	// DefaultPath is read when present and no path was given
	DefaultPath = "vi-pong.toml"

	// PathEnv names the variable holding the config path
	PathEnv = "VIPONG_CONFIG"

	// EnvPrefix prefixes every override variable
	EnvPrefix = "VIPONG_"

	// MinVolume and MaxVolume bound the base-2 master volume
	MinVolume = -5.0
	MaxVolume = 0.0
)

type Config struct {
	Display DisplayConfig `toml:"display" envPrefix:"DISPLAY_"`
	Audio   AudioConfig   `toml:"audio" envPrefix:"AUDIO_"`
	Input   InputConfig   `toml:"input" envPrefix:"INPUT_"`
	Keys    KeysConfig    `toml:"keys"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`
}

type DisplayConfig struct {
	CenterLine bool `toml:"center_line" env:"CENTER_LINE"`
	Monochrome bool `toml:"monochrome" env:"MONOCHROME"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"` // base 2, 0 = unity
}

type InputConfig struct {
	HoldWindow time.Duration `toml:"hold_window" env:"HOLD_WINDOW"`
}

// KeysConfig lists key names per action; an empty list keeps the default binding
type KeysConfig struct {
	LeftUp    []string `toml:"left_up"`
	LeftDown  []string `toml:"left_down"`
	RightUp   []string `toml:"right_up"`
	RightDown []string `toml:"right_down"`
	Quit      []string `toml:"quit"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Level   string `toml:"level" env:"LEVEL"`
	Format  string `toml:"format" env:"FORMAT"` // "json" or "console"
	Dir     string `toml:"dir" env:"DIR"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			CenterLine: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultAudioVolume,
		},
		Input: InputConfig{
			HoldWindow: constants.DefaultKeyHoldWindow,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the config file: explicit path, then $VIPONG_CONFIG, then DefaultPath if it exists.
// Returns "" when there is nothing to read.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

// LoadFromSources resolves the config file, applies environment overrides and validates.
// An explicitly named file that is missing is an error; a missing default file is not.
func LoadFromSources(explicit string) (*Config, error) {
	cfg := Default()
	if path := ResolvePath(explicit); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields from VIPONG_* variables; unset variables leave fields alone
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error
	if c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [%v, %v]", c.Audio.Volume, MinVolume, MaxVolume))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_window must be positive, got %v", c.Input.HoldWindow))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// KeyBindings returns the action -> key names map consumed by the input package
func (c *Config) KeyBindings() map[string][]string {
	bindings := make(map[string][]string, 5)
	add := func(action string, keys []string) {
		if len(keys) > 0 {
			bindings[action] = keys
		}
	}
	add("left_up", c.Keys.LeftUp)
	add("left_down", c.Keys.LeftDown)
	add("right_up", c.Keys.RightUp)
	add("right_down", c.Keys.RightDown)
	add("quit", c.Keys.Quit)
	return bindings
}
