// Package occupancy implements the bounded occupancy counter shared by the
// panel tasks.
//
// A Counter holds the occupancy count, the capacity limit, the blocked flag
// and the reset pulses as one record behind a single mutex. Every mutation
// goes through TryIncrement, TryDecrement or DrainAndReset, so the
// 0 <= occupancy <= capacity invariant holds by construction and is never
// re-checked at read time.
//
// # Observation
//
// Observers never hold the lock across rendering. They take a consistent
// Snapshot in one critical section and render from the copy:
//
//	snap := counter.Observe()
//	color := snap.Band().Color()
//
// Two observation methods carry consumption semantics:
//
//   - ObserveDisplay consumes the display reset pulse, so the display
//     renders exactly one reset confirmation per reset event.
//   - NextAlert consumes the blocked flag or the tone reset pulse, never
//     both, so each alert produces exactly one sound sequence.
//
// # Bands
//
// The occupancy band (EMPTY, NORMAL, WARNING, FULL) is derived from the
// count on every observation and never stored. Storing it separately would
// reintroduce the consistency hazard the single-record design avoids.
package occupancy
