package occupancy

import (
	"errors"
	"sync"
)

// DefaultCapacity is the capacity used when none is configured.
const DefaultCapacity = 10

// MinCapacity is the smallest usable capacity. Below two slots the warning
// band (capacity-1) would collide with empty.
const MinCapacity = 2

// Counter errors.
var (
	ErrInvalidCapacity = errors.New("capacity must be at least 2")
	ErrCapacityReached = errors.New("occupancy at capacity")
	ErrAlreadyEmpty    = errors.New("occupancy already zero")
)

// Counter is the shared occupancy record. The count, the blocked flag and
// the reset pulses live behind one mutex so a reset and an increment can
// never interleave inside a critical section.
type Counter struct {
	mu sync.Mutex

	capacity  int
	occupancy int

	// blocked is set by a rejected entry attempt and consumed once by the
	// tone observer (or cleared by a reset).
	blocked bool

	// Reset pulses are armed together by DrainAndReset and consumed
	// independently, each at most once. Two slots, not one, because the
	// display and the tone observer run at different cadences.
	displayPulse bool
	tonePulse    bool
}

// New creates a Counter with the given capacity, starting empty.
func New(capacity int) (*Counter, error) {
	if capacity < MinCapacity {
		return nil, ErrInvalidCapacity
	}
	return &Counter{capacity: capacity}, nil
}

// Capacity returns the configured capacity.
func (c *Counter) Capacity() int {
	return c.capacity
}

// TryIncrement admits one entry, returning the resulting occupancy. It
// never blocks: at capacity it sets the blocked flag, leaves the count
// unchanged and returns ErrCapacityReached. The capacity check and the
// increment happen in one critical section.
func (c *Counter) TryIncrement() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.occupancy >= c.capacity {
		c.blocked = true
		return c.occupancy, ErrCapacityReached
	}
	c.occupancy++
	return c.occupancy, nil
}

// TryDecrement releases one entry, returning the resulting occupancy. At
// zero it returns ErrAlreadyEmpty and changes nothing; an exit press in an
// empty room is a benign no-op.
func (c *Counter) TryDecrement() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.occupancy <= 0 {
		return 0, ErrAlreadyEmpty
	}
	c.occupancy--
	return c.occupancy, nil
}

// DrainAndReset unconditionally empties the room, clears the blocked flag
// and arms both reset pulses. Returns the occupancy that was drained.
func (c *Counter) DrainAndReset() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := c.occupancy
	c.occupancy = 0
	c.blocked = false
	c.displayPulse = true
	c.tonePulse = true
	return drained
}

// Snapshot is a consistent copy of the shared record, taken in one critical
// section and safe to render from without the lock.
type Snapshot struct {
	Occupancy  int
	Capacity   int
	Blocked    bool
	ResetPulse bool
}

// Band returns the occupancy band for this snapshot.
func (s Snapshot) Band() Band {
	return BandOf(s.Occupancy, s.Capacity)
}

// Observe returns a read-only snapshot. ResetPulse reports the display
// pulse without consuming it.
func (c *Counter) Observe() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Occupancy:  c.occupancy,
		Capacity:   c.capacity,
		Blocked:    c.blocked,
		ResetPulse: c.displayPulse,
	}
}

// ObserveDisplay returns a snapshot and consumes the display reset pulse.
// The ResetPulse field reports the consumed value, so at most one snapshot
// per reset event carries it.
func (c *Counter) ObserveDisplay() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Occupancy:  c.occupancy,
		Capacity:   c.capacity,
		Blocked:    c.blocked,
		ResetPulse: c.displayPulse,
	}
	c.displayPulse = false
	return snap
}

// Alert is a one-shot condition for the tone observer.
type Alert uint8

const (
	// AlertNone indicates nothing to play.
	AlertNone Alert = iota

	// AlertCapacity indicates a rejected entry attempt at capacity.
	AlertCapacity

	// AlertReset indicates a completed system reset.
	AlertReset
)

// String returns the alert name.
func (a Alert) String() string {
	switch a {
	case AlertNone:
		return "NONE"
	case AlertCapacity:
		return "CAPACITY"
	case AlertReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// NextAlert consumes and returns the pending alert for the tone observer.
// A capacity alert takes precedence over a reset confirmation; the two are
// mutually exclusive per call and each assertion is consumed exactly once.
func (c *Counter) NextAlert() Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blocked {
		c.blocked = false
		return AlertCapacity
	}
	if c.tonePulse {
		c.tonePulse = false
		return AlertReset
	}
	return AlertNone
}
