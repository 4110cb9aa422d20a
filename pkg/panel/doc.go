// Package panel wires the occupancy counter, the debounced inputs, the
// reset signal and the observers into a running access-control panel.
//
// A Service owns six tasks, all sharing one occupancy.Counter:
//
//   - entry task: polls the entry button, debounces, TryIncrement
//   - exit task: polls the exit button, debounces, TryDecrement
//   - reset coordinator: blocks on the reset signal, DrainAndReset
//   - display observer: occupancy + band text, reset confirmation frame
//   - tone observer: capacity alert and reset confirmation sequences
//   - indicator observer: band color on the RGB pins and the matrix arrow
//
// The reset button is edge-driven: the registered callback runs in
// interrupt context, evaluates only the reset debounce gate and raises the
// coalescing signal. It touches no shared state and returns in bounded
// time.
//
// Observers snapshot the shared record in one critical section and render
// with the lock released; driver I/O never happens under the lock. The
// button tasks never block on capacity: a rejected press is dropped and
// the human presses again.
package panel
