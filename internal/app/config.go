// Package app wires the cartridge, bus, CPU, and host together into a
// runnable emulator: configuration loading, construction, and the main
// step/pace loop, narrowed to the subsystems this core actually
// implements.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application's persisted settings. Unlike a full
// console emulator's config, there is no PPU/APU/controller-deadzone
// section to carry: this core has no video or audio pipeline, so Window,
// Emulation, Debug and Paths are the whole of it.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
	Paths     PathsConfig     `json:"paths"`

	configPath string
	loaded     bool
}

// WindowConfig controls the optional ebiten window; ignored entirely in
// headless mode.
type WindowConfig struct {
	Scale      int  `json:"scale"`
	Fullscreen bool `json:"fullscreen"`
}

// EmulationConfig controls run-loop pacing and the backend selection.
type EmulationConfig struct {
	Headless     bool    `json:"headless"`
	FrameRate    float64 `json:"frame_rate"` // target Hz; 0 means run flat-out
	StopOnDecode bool    `json:"stop_on_decode_error"`
}

// DebugConfig controls CPU tracing and serial-tap echoing.
type DebugConfig struct {
	CPUTracing   bool   `json:"cpu_tracing"`
	EchoSerial   bool   `json:"echo_serial"`
	LogLevel     string `json:"log_level"` // "DEBUG", "INFO", "WARN", "ERROR"
}

// PathsConfig names where persisted files live.
type PathsConfig struct {
	ROMs   string `json:"roms"`
	Config string `json:"config"`
}

// NewConfig returns a Config with the documented defaults: a windowed
// host running at the Game Boy's native ~59.73 Hz.
func NewConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Scale:      3,
			Fullscreen: false,
		},
		Emulation: EmulationConfig{
			Headless:     false,
			FrameRate:    59.7275,
			StopOnDecode: true,
		},
		Debug: DebugConfig{
			CPUTracing: false,
			EchoSerial: true,
			LogLevel:   "INFO",
		},
		Paths: PathsConfig{
			ROMs:   "roms",
			Config: GetDefaultConfigPath(),
		},
	}
}

// LoadFromFile loads JSON configuration from path, writing out the
// default configuration first if the file does not yet exist.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("app: parse config file: %w", err)
	}
	c.validate()
	c.loaded = true
	return nil
}

// SaveToFile writes the configuration to path as indented JSON.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("app: create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("app: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("app: write config file: %w", err)
	}
	c.configPath = path
	return nil
}

// validate clamps out-of-range values to safe defaults rather than
// rejecting the whole file over one bad field.
func (c *Config) validate() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	if c.Emulation.FrameRate < 0 {
		c.Emulation.FrameRate = 59.7275
	}
}

// IsLoaded reports whether LoadFromFile has successfully populated this
// Config from disk.
func (c *Config) IsLoaded() bool { return c.loaded }

// GetDefaultConfigPath returns the per-user config file location.
func GetDefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gbcore.json"
	}
	return filepath.Join(dir, "gbcore", "config.json")
}
