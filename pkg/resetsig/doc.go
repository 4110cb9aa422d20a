// Package resetsig provides the one-shot coalescing signal that hands the
// reset request from the interrupt path to the reset coordinator.
//
// The signal is deliberately not a counting primitive. Reset is idempotent,
// so repeated raises before the coordinator wakes collapse into a single
// pending delivery; the coalesced raises are intended behavior, not data
// loss. Raise never blocks and is safe to call from an edge callback.
package resetsig
