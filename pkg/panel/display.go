package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/roomgate/roomgate-go/pkg/occupancy"
)

// Display wording per band.
const (
	displayTitle  = "ACCESS CONTROL"
	statusOpen    = "OK TO ENTER"
	statusOneSlot = "ONE SLOT LEFT"
	statusFull    = "ROOM FULL"
	resetLine1    = "SYSTEM"
	resetLine2    = "RESET"
)

// displayTask renders the occupancy screen. Redraws are edge-triggered on
// the occupancy value, except that a reset pulse always forces one
// confirmation frame.
func (s *Service) displayTask(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.DisplayRefresh)
	defer ticker.Stop()

	lastDrawn := -1

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap := s.counter.ObserveDisplay()

		if snap.ResetPulse {
			s.drawResetFrame()
			// Hold the confirmation, then force a normal redraw.
			sleep(ctx, s.cfg.ResetHold)
			lastDrawn = -1
			continue
		}

		if snap.Occupancy == lastDrawn {
			continue
		}
		s.drawStatusFrame(snap)
		lastDrawn = snap.Occupancy
	}
}

func (s *Service) drawResetFrame() {
	d := s.p.Display
	d.Clear()
	d.DrawText(resetLine1, 25, 25)
	d.DrawText(resetLine2, 25, 35)
	if err := d.Flush(); err != nil {
		s.logger.Error("display flush failed", "err", err)
	}
}

func (s *Service) drawStatusFrame(snap occupancy.Snapshot) {
	status := statusOpen
	x := 20
	switch snap.Band() {
	case occupancy.BandFull:
		status = statusFull
		x = 10
	case occupancy.BandWarning:
		status = statusOneSlot
		x = 10
	}

	d := s.p.Display
	d.Clear()
	d.DrawText(displayTitle, 5, 10)
	d.DrawText(fmt.Sprintf("OCCUPANCY: %d", snap.Occupancy), 15, 30)
	d.DrawText(status, x, 50)
	if err := d.Flush(); err != nil {
		s.logger.Error("display flush failed", "err", err)
	}
}
