// Package tracelog provides a structured event trace for the panel.
//
// The trace captures access attempts, resets, band transitions and consumed
// alerts as machine-readable records, separate from operational logging
// (slog). It answers questions like "how often was the room full" or "did
// the reset line chatter" after the fact.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: echo events to console via slog
//	cfg.Trace = tracelog.NewSlogAdapter(slog.Default())
//
//	// For long-running panels: write to a binary file
//	cfg.Trace, _ = tracelog.NewFileLogger("/var/log/roomgate/panel.rlog")
//
//	// Both: use MultiLogger
//	cfg.Trace = tracelog.NewMultiLogger(
//	    tracelog.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys and
// the .rlog extension. The roomgate-trace command reads, filters and
// pretty-prints them.
package tracelog
