// Package debounce filters noisy raw button reads into single-shot press
// events.
//
// A Gate accepts at most one press per quiet period. It keeps only the
// timestamp of the last accepted press, so a held button reads as one
// press until the quiet period elapses.
//
// A Gate has exactly one owner: either a polling task or an edge callback.
// It is deliberately not safe for concurrent use; sharing a gate across
// tasks would merge two physical buttons into one debounce window.
package debounce
