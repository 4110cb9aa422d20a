package tracelog

import "time"

// Event represents one trace record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies one panel run (UUID, assigned at start).
	RunID string `cbor:"2,keyasint"`

	// PanelID is the configured panel serial number.
	PanelID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Access *AccessEvent     `cbor:"5,keyasint,omitempty"` // Entry/exit attempts
	Reset  *ResetEvent      `cbor:"6,keyasint,omitempty"` // Drain-and-reset
	Band   *BandChangeEvent `cbor:"7,keyasint,omitempty"` // Occupancy band transitions
	Alert  *AlertEvent      `cbor:"8,keyasint,omitempty"` // Alerts consumed by the tone observer
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryAccess indicates an entry or exit attempt.
	CategoryAccess Category = 0
	// CategoryReset indicates a completed reset.
	CategoryReset Category = 1
	// CategoryBand indicates an occupancy band transition.
	CategoryBand Category = 2
	// CategoryAlert indicates an alert consumed by the tone observer.
	CategoryAlert Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAccess:
		return "ACCESS"
	case CategoryReset:
		return "RESET"
	case CategoryBand:
		return "BAND"
	case CategoryAlert:
		return "ALERT"
	default:
		return "UNKNOWN"
	}
}

// Direction indicates which button an access attempt came from.
type Direction uint8

const (
	// DirectionEntry indicates the entry button.
	DirectionEntry Direction = 0
	// DirectionExit indicates the exit button.
	DirectionExit Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionEntry:
		return "ENTRY"
	case DirectionExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// AccessEvent captures a debounced entry or exit attempt.
type AccessEvent struct {
	// Direction of the attempt.
	Direction Direction `cbor:"1,keyasint"`

	// Accepted reports whether the counter admitted the attempt.
	Accepted bool `cbor:"2,keyasint"`

	// Occupancy after the attempt (unchanged when rejected).
	Occupancy int `cbor:"3,keyasint"`

	// Reason for a rejected attempt ("capacity" or "empty").
	Reason string `cbor:"4,keyasint,omitempty"`
}

// ResetEvent captures a completed drain-and-reset.
type ResetEvent struct {
	// Drained is the occupancy that was cleared.
	Drained int `cbor:"1,keyasint"`
}

// BandChangeEvent captures an occupancy band transition.
type BandChangeEvent struct {
	// OldBand is the previous band name.
	OldBand string `cbor:"1,keyasint"`

	// NewBand is the new band name.
	NewBand string `cbor:"2,keyasint"`

	// Occupancy at the transition.
	Occupancy int `cbor:"3,keyasint"`
}

// AlertEvent captures an alert consumed by the tone observer.
type AlertEvent struct {
	// Kind is the alert name ("CAPACITY" or "RESET").
	Kind string `cbor:"1,keyasint"`
}
