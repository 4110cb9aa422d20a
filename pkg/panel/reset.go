package panel

import (
	"context"

	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// resetTask is the reset coordinator. It never polls: it sleeps on the
// coalescing signal and drains the counter on each wake. Multiple reset
// presses before a wake collapse into one drain.
func (s *Service) resetTask(ctx context.Context) {
	for {
		if err := s.reset.Wait(ctx); err != nil {
			return
		}

		drained := s.counter.DrainAndReset()
		s.logger.Info("system reset", "drained", drained)

		ev := s.event(tracelog.CategoryReset)
		ev.Reset = &tracelog.ResetEvent{Drained: drained}
		s.trace.Log(ev)
		s.traceBandChange(drained, 0)
	}
}
