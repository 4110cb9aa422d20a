package panel

import (
	"context"
	"time"

	"github.com/roomgate/roomgate-go/pkg/occupancy"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// toneTask consumes pending alerts and plays the matching sequence. Each
// alert assertion produces exactly one sequence; the capacity alert and
// the reset confirmation never mix within one pass. The buzzer blocks for
// each tone, with no lock held.
func (s *Service) toneTask(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ToneRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		alert := s.counter.NextAlert()
		if alert == occupancy.AlertNone {
			continue
		}

		ev := s.event(tracelog.CategoryAlert)
		ev.Alert = &tracelog.AlertEvent{Kind: alert.String()}
		s.trace.Log(ev)

		switch alert {
		case occupancy.AlertCapacity:
			s.playCapacityAlert(ctx)
		case occupancy.AlertReset:
			s.playResetConfirmation(ctx)
		}
	}
}

// playCapacityAlert is the prolonged full-room tone.
func (s *Service) playCapacityAlert(ctx context.Context) {
	s.p.Buzzer.Play(200, 200*time.Millisecond)
	sleep(ctx, 100*time.Millisecond)
}

// playResetConfirmation is the two-beep sequence, twice.
func (s *Service) playResetConfirmation(ctx context.Context) {
	for i := 0; i < 2; i++ {
		s.p.Buzzer.Play(100, 100*time.Millisecond)
		s.p.Buzzer.Play(200, 100*time.Millisecond)
		sleep(ctx, 50*time.Millisecond)
	}
}
