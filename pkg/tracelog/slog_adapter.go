package tracelog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see panel events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("category", event.Category.String()),
	}

	if event.PanelID != "" {
		attrs = append(attrs, slog.String("panel_id", event.PanelID))
	}

	// Add type-specific attributes
	switch {
	case event.Access != nil:
		attrs = append(attrs,
			slog.String("direction", event.Access.Direction.String()),
			slog.Bool("accepted", event.Access.Accepted),
			slog.Int("occupancy", event.Access.Occupancy),
		)
		if event.Access.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Access.Reason))
		}
	case event.Reset != nil:
		attrs = append(attrs, slog.Int("drained", event.Reset.Drained))
	case event.Band != nil:
		attrs = append(attrs,
			slog.String("old_band", event.Band.OldBand),
			slog.String("new_band", event.Band.NewBand),
			slog.Int("occupancy", event.Band.Occupancy),
		)
	case event.Alert != nil:
		attrs = append(attrs, slog.String("alert", event.Alert.Kind))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
