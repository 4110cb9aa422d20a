package debounce

import "time"

// Debounce timing constants.
const (
	// ButtonQuietPeriod is the software debounce window for the polled
	// entry and exit buttons.
	ButtonQuietPeriod = 250 * time.Millisecond

	// ResetQuietPeriod is the coarser window for the reset line, evaluated
	// inside the edge callback at signal time so a second edge within the
	// window is rejected even if no task runs between the edges.
	ResetQuietPeriod = 300 * time.Millisecond

	// PollInterval is how often the button tasks sample their pins.
	PollInterval = 10 * time.Millisecond
)

// Gate is a per-input debounce filter. The zero value is unusable; create
// gates with NewGate. A Gate is owned by a single task or callback and is
// not safe for concurrent use.
type Gate struct {
	quiet        time.Duration
	lastAccepted time.Time
}

// NewGate creates a gate with the given quiet period.
func NewGate(quiet time.Duration) *Gate {
	return &Gate{quiet: quiet}
}

// Poll evaluates one raw sample. It returns true at most once per quiet
// period: only when pressed is true and at least the quiet period has
// passed since the last accepted press. Acceptance updates the gate.
//
// now should come from the monotonic clock (time.Now carries a monotonic
// reading), so wall-clock adjustments cannot widen or collapse the window.
func (g *Gate) Poll(pressed bool, now time.Time) bool {
	if !pressed {
		return false
	}
	if !g.lastAccepted.IsZero() && now.Sub(g.lastAccepted) < g.quiet {
		return false
	}
	g.lastAccepted = now
	return true
}

// QuietPeriod returns the configured quiet period.
func (g *Gate) QuietPeriod() time.Duration {
	return g.quiet
}
