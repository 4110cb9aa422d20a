package panel

import (
	"log/slog"
	"time"

	"github.com/roomgate/roomgate-go/pkg/debounce"
	"github.com/roomgate/roomgate-go/pkg/hal"
	"github.com/roomgate/roomgate-go/pkg/occupancy"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// Config holds the panel service configuration.
type Config struct {
	// Capacity is the maximum occupancy.
	Capacity int

	// PanelID identifies this panel in trace events.
	PanelID string

	// Button and reset pins.
	EntryPin hal.Pin
	ExitPin  hal.Pin
	ResetPin hal.Pin

	// Indicator LED pins.
	RedPin   hal.Pin
	GreenPin hal.Pin
	BluePin  hal.Pin

	// Debounce windows and the button sampling interval.
	ButtonQuiet  time.Duration
	ResetQuiet   time.Duration
	PollInterval time.Duration

	// Observer cadences.
	DisplayRefresh   time.Duration
	ToneRefresh      time.Duration
	IndicatorRefresh time.Duration

	// ResetHold is how long the reset confirmation frame stays up.
	ResetHold time.Duration

	// Logger is the operational logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Trace receives structured panel events. Defaults to NoopLogger.
	Trace tracelog.Logger
}

// DefaultConfig returns the reference panel configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:         occupancy.DefaultCapacity,
		EntryPin:         5,
		ExitPin:          6,
		ResetPin:         22,
		RedPin:           13,
		GreenPin:         11,
		BluePin:          12,
		ButtonQuiet:      debounce.ButtonQuietPeriod,
		ResetQuiet:       debounce.ResetQuietPeriod,
		PollInterval:     debounce.PollInterval,
		DisplayRefresh:   200 * time.Millisecond,
		ToneRefresh:      50 * time.Millisecond,
		IndicatorRefresh: 200 * time.Millisecond,
		ResetHold:        time.Second,
	}
}

// Peripherals bundles the driver handles the panel renders through.
type Peripherals struct {
	GPIO    hal.GPIO
	Edges   hal.EdgeWatcher
	Display hal.Display
	Buzzer  hal.Buzzer
	Matrix  hal.Matrix
}
