package panel

import (
	"context"
	"time"

	"github.com/roomgate/roomgate-go/pkg/hal"
	"github.com/roomgate/roomgate-go/pkg/occupancy"
)

// arrowPattern is the 5x5 entry arrow.
var arrowPattern = [hal.MatrixPixels]bool{
	false, false, true, false, false,
	true, true, true, true, false,
	true, true, true, true, true,
	true, true, true, true, false,
	false, false, true, false, false,
}

// Matrix blink phase: arrow on, then dark, repeating.
const (
	arrowOnPhase = 1000 * time.Millisecond
	blinkCycle   = 1500 * time.Millisecond
)

// bandColor maps an occupancy band to the indicator color.
func bandColor(b occupancy.Band) hal.Color {
	switch b {
	case occupancy.BandEmpty:
		return hal.ColorBlue
	case occupancy.BandWarning:
		return hal.ColorYellow
	case occupancy.BandFull:
		return hal.ColorRed
	default:
		return hal.ColorGreen
	}
}

// indicatorTask drives the RGB pins and the matrix arrow from the derived
// band. It is a pure function of the occupancy snapshot plus the blink
// phase; no flags are involved.
func (s *Service) indicatorTask(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.IndicatorRefresh)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		color := bandColor(s.counter.Observe().Band())

		s.p.GPIO.Write(s.cfg.RedPin, color.R > 0)
		s.p.GPIO.Write(s.cfg.GreenPin, color.G > 0)
		s.p.GPIO.Write(s.cfg.BluePin, color.B > 0)

		var frame [hal.MatrixPixels]hal.Color
		if time.Since(start)%blinkCycle < arrowOnPhase {
			for i, on := range arrowPattern {
				if on {
					frame[i] = color
				}
			}
		}
		s.p.Matrix.Emit(frame)
	}
}
