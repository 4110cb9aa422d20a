package resetsig

import "context"

// Signal is a single-slot coalescing notification. The zero value is not
// usable; create signals with New.
type Signal struct {
	ch chan struct{}
}

// New creates an unraised Signal.
func New() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Raise marks the signal pending without blocking. It returns false when a
// raise was already pending and this one coalesced into it.
func (s *Signal) Raise() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Wait blocks until the signal is raised or ctx is done. Consuming the
// signal rearms it for the next raise.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending reports whether a raise is waiting to be consumed.
func (s *Signal) Pending() bool {
	return len(s.ch) > 0
}
