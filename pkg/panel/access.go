package panel

import (
	"context"
	"errors"
	"time"

	"github.com/roomgate/roomgate-go/pkg/debounce"
	"github.com/roomgate/roomgate-go/pkg/occupancy"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// entryTask polls the entry button and admits entries. A press at capacity
// is rejected inside the counter (which raises the blocked flag for the
// tone observer) and simply dropped here; the human presses again.
func (s *Service) entryTask(ctx context.Context) {
	gate := debounce.NewGate(s.cfg.ButtonQuiet)
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !gate.Poll(s.p.GPIO.Read(s.cfg.EntryPin), time.Now()) {
			continue
		}

		occ, err := s.counter.TryIncrement()
		ev := s.event(tracelog.CategoryAccess)
		switch {
		case err == nil:
			s.logger.Info("entry", "occupancy", occ)
			ev.Access = &tracelog.AccessEvent{Direction: tracelog.DirectionEntry, Accepted: true, Occupancy: occ}
			s.trace.Log(ev)
			s.traceBandChange(occ-1, occ)
		case errors.Is(err, occupancy.ErrCapacityReached):
			s.logger.Warn("entry rejected", "occupancy", occ, "capacity", s.cfg.Capacity)
			ev.Access = &tracelog.AccessEvent{Direction: tracelog.DirectionEntry, Occupancy: occ, Reason: "capacity"}
			s.trace.Log(ev)
		}
	}
}

// exitTask polls the exit button and releases entries. An exit press in an
// empty room is logged at debug level and produces no user feedback; the
// full room never stalls the exit path.
func (s *Service) exitTask(ctx context.Context) {
	gate := debounce.NewGate(s.cfg.ButtonQuiet)
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !gate.Poll(s.p.GPIO.Read(s.cfg.ExitPin), time.Now()) {
			continue
		}

		occ, err := s.counter.TryDecrement()
		ev := s.event(tracelog.CategoryAccess)
		switch {
		case err == nil:
			s.logger.Info("exit", "occupancy", occ)
			ev.Access = &tracelog.AccessEvent{Direction: tracelog.DirectionExit, Accepted: true, Occupancy: occ}
			s.trace.Log(ev)
			s.traceBandChange(occ+1, occ)
		case errors.Is(err, occupancy.ErrAlreadyEmpty):
			s.logger.Debug("exit press on empty room")
			ev.Access = &tracelog.AccessEvent{Direction: tracelog.DirectionExit, Occupancy: 0, Reason: "empty"}
			s.trace.Log(ev)
		}
	}
}
