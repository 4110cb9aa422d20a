package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roomgate/roomgate-go/pkg/debounce"
	"github.com/roomgate/roomgate-go/pkg/occupancy"
)

// Config is the panel configuration.
type Config struct {
	// Capacity is the maximum occupancy.
	Capacity int `yaml:"capacity"`

	// PanelID identifies this panel in trace events. Auto-generated when
	// empty.
	PanelID string `yaml:"panel_id"`

	// Pins assigns the GPIO pins.
	Pins Pins `yaml:"pins"`

	// Timing holds debounce and observer cadences in milliseconds.
	Timing Timing `yaml:"timing"`

	// TraceFile is the path for the CBOR event trace. Empty disables the
	// file trace.
	TraceFile string `yaml:"trace_file"`

	// LogLevel is the operational log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Pins assigns the GPIO pins (reference board numbering).
type Pins struct {
	Entry    uint8 `yaml:"entry"`
	Exit     uint8 `yaml:"exit"`
	Reset    uint8 `yaml:"reset"`
	LEDRed   uint8 `yaml:"led_red"`
	LEDGreen uint8 `yaml:"led_green"`
	LEDBlue  uint8 `yaml:"led_blue"`
}

// Timing holds debounce and observer cadences in milliseconds.
type Timing struct {
	ButtonQuietMs int `yaml:"button_quiet_ms"`
	ResetQuietMs  int `yaml:"reset_quiet_ms"`
	PollMs        int `yaml:"poll_ms"`
	DisplayMs     int `yaml:"display_ms"`
	ToneMs        int `yaml:"tone_ms"`
	IndicatorMs   int `yaml:"indicator_ms"`
}

// LoadError reports a failure to read, parse or validate a config file.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

// Error returns the error message.
func (e *LoadError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("config %s: %s: %v", e.File, e.Message, e.Cause)
		}
		return fmt.Sprintf("config %s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the reference configuration: capacity 10, the BitDogLab
// pin map and the firmware timing values.
func Default() Config {
	return Config{
		Capacity: occupancy.DefaultCapacity,
		Pins: Pins{
			Entry:    5,
			Exit:     6,
			Reset:    22,
			LEDRed:   13,
			LEDGreen: 11,
			LEDBlue:  12,
		},
		Timing: Timing{
			ButtonQuietMs: int(debounce.ButtonQuietPeriod / time.Millisecond),
			ResetQuietMs:  int(debounce.ResetQuietPeriod / time.Millisecond),
			PollMs:        int(debounce.PollInterval / time.Millisecond),
			DisplayMs:     200,
			ToneMs:        50,
			IndicatorMs:   200,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return Config{}, le
		}
		return Config{}, &LoadError{File: path, Message: err.Error()}
	}
	return cfg, nil
}

// Parse applies YAML bytes on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Capacity < occupancy.MinCapacity {
		return &LoadError{Message: fmt.Sprintf("capacity must be at least %d, got %d", occupancy.MinCapacity, c.Capacity)}
	}
	if c.Timing.PollMs <= 0 {
		return &LoadError{Message: "poll_ms must be positive"}
	}
	if c.Timing.ButtonQuietMs < c.Timing.PollMs {
		return &LoadError{Message: "button_quiet_ms must be at least poll_ms"}
	}
	if c.Timing.ResetQuietMs <= 0 {
		return &LoadError{Message: "reset_quiet_ms must be positive"}
	}
	if c.Timing.DisplayMs <= 0 || c.Timing.ToneMs <= 0 || c.Timing.IndicatorMs <= 0 {
		return &LoadError{Message: "observer cadences must be positive"}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return &LoadError{Message: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// Duration helpers.

// ButtonQuiet returns the button debounce window.
func (t Timing) ButtonQuiet() time.Duration { return time.Duration(t.ButtonQuietMs) * time.Millisecond }

// ResetQuiet returns the reset debounce window.
func (t Timing) ResetQuiet() time.Duration { return time.Duration(t.ResetQuietMs) * time.Millisecond }

// Poll returns the button sampling interval.
func (t Timing) Poll() time.Duration { return time.Duration(t.PollMs) * time.Millisecond }

// Display returns the display refresh cadence.
func (t Timing) Display() time.Duration { return time.Duration(t.DisplayMs) * time.Millisecond }

// Tone returns the tone observer cadence.
func (t Timing) Tone() time.Duration { return time.Duration(t.ToneMs) * time.Millisecond }

// Indicator returns the indicator refresh cadence.
func (t Timing) Indicator() time.Duration { return time.Duration(t.IndicatorMs) * time.Millisecond }
