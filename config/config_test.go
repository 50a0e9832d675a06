package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "vi-pong.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// chdir switches to dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Display.CenterLine {
		t.Error("Expected centre line enabled by default")
	}
	if cfg.Display.Monochrome {
		t.Error("Expected color by default")
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Audio.Volume != constants.DefaultAudioVolume {
		t.Errorf("Expected volume %v, got %v", constants.DefaultAudioVolume, cfg.Audio.Volume)
	}
	if cfg.Input.HoldWindow != constants.DefaultKeyHoldWindow {
		t.Errorf("Expected hold window %v, got %v", constants.DefaultKeyHoldWindow, cfg.Input.HoldWindow)
	}
	if cfg.Logging.Enabled {
		t.Error("Expected logging disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
	if len(cfg.KeyBindings()) != 0 {
		t.Errorf("Expected no key overrides, got %v", cfg.KeyBindings())
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[display]
center_line = false
monochrome = true

[audio]
enabled = false
volume = -2.5

[input]
hold_window = "200ms"

[keys]
left_up = ["e"]
right_down = ["j", "down"]

[logging]
enabled = true
level = "debug"
format = "json"
dir = "/tmp/pong-logs"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Display.CenterLine || !cfg.Display.Monochrome {
		t.Errorf("Unexpected display config %+v", cfg.Display)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != -2.5 {
		t.Errorf("Unexpected audio config %+v", cfg.Audio)
	}
	if cfg.Input.HoldWindow != 200*time.Millisecond {
		t.Errorf("Expected 200ms hold window, got %v", cfg.Input.HoldWindow)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || cfg.Logging.Dir != "/tmp/pong-logs" {
		t.Errorf("Unexpected logging config %+v", cfg.Logging)
	}

	bindings := cfg.KeyBindings()
	if len(bindings) != 2 {
		t.Fatalf("Expected 2 key overrides, got %v", bindings)
	}
	if got := bindings["right_down"]; len(got) != 2 || got[0] != "j" || got[1] != "down" {
		t.Errorf("Expected right_down [j down], got %v", got)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[display]\nmonochrome = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Display.Monochrome {
		t.Error("Expected monochrome from file")
	}
	if !cfg.Display.CenterLine {
		t.Error("Expected default centre line to survive")
	}
	if cfg.Audio.Volume != constants.DefaultAudioVolume || cfg.Logging.Dir != "logs" {
		t.Error("Expected untouched sections to keep defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := writeConfig(t, dir, "[display\ncenter_line = ")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[audio]\nvolume = -3.0\n\n[display]\nmonochrome = false\n")

	t.Setenv("VIPONG_AUDIO_VOLUME", "-0.5")
	t.Setenv("VIPONG_DISPLAY_MONOCHROME", "true")
	t.Setenv("VIPONG_INPUT_HOLD_WINDOW", "90ms")
	t.Setenv("VIPONG_LOG_LEVEL", "warn")

	cfg, err := LoadFromSources(path)
	if err != nil {
		t.Fatalf("LoadFromSources failed: %v", err)
	}

	if cfg.Audio.Volume != -0.5 {
		t.Errorf("Expected env volume -0.5, got %v", cfg.Audio.Volume)
	}
	if !cfg.Display.Monochrome {
		t.Error("Expected env monochrome")
	}
	if cfg.Input.HoldWindow != 90*time.Millisecond {
		t.Errorf("Expected 90ms hold window, got %v", cfg.Input.HoldWindow)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected warn level, got %q", cfg.Logging.Level)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected unset env to leave audio enabled")
	}
}

func TestEnvInvalidValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(PathEnv, "")
	t.Setenv("VIPONG_AUDIO_VOLUME", "loud")

	if _, err := LoadFromSources(""); err == nil {
		t.Error("Expected error for non-numeric volume")
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(PathEnv, "")

	if got := ResolvePath(""); got != "" {
		t.Errorf("Expected no path without default file, got %q", got)
	}

	writeConfig(t, dir, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("Expected default path, got %q", got)
	}

	t.Setenv(PathEnv, "/etc/vi-pong.toml")
	if got := ResolvePath(""); got != "/etc/vi-pong.toml" {
		t.Errorf("Expected env path, got %q", got)
	}

	if got := ResolvePath("custom.toml"); got != "custom.toml" {
		t.Errorf("Expected explicit path, got %q", got)
	}
}

func TestLoadFromSourcesMissing(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(PathEnv, "")

	cfg, err := LoadFromSources("")
	if err != nil {
		t.Fatalf("Expected missing default file to be fine, got %v", err)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected defaults")
	}

	if _, err := LoadFromSources("does-not-exist.toml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error for explicit path, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"volume too high", func(c *Config) { c.Audio.Volume = 1 }, "audio.volume"},
		{"volume too low", func(c *Config) { c.Audio.Volume = -6 }, "audio.volume"},
		{"zero hold window", func(c *Config) { c.Input.HoldWindow = 0 }, "hold_window"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"upper-case level", func(c *Config) { c.Logging.Level = "WARN" }, ""},
		{"upper-case format", func(c *Config) { c.Logging.Format = "JSON" }, ""},
		{"bounds inclusive", func(c *Config) { c.Audio.Volume = MinVolume }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
