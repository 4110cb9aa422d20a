// Package simhw provides simulated hardware for the panel: a GPIO board
// with programmable levels and falling-edge callbacks, and recording
// display, buzzer and matrix drivers.
//
// The simulators implement the pkg/hal interfaces and double as test
// doubles: they record everything rendered through them and expose the
// recordings to assertions.
package simhw

import (
	"fmt"
	"sync"

	"github.com/roomgate/roomgate-go/pkg/hal"
)

// Board simulates the GPIO controller. Inputs read true while held
// pressed; outputs keep their last written level.
type Board struct {
	mu     sync.Mutex
	levels map[hal.Pin]bool
	edges  map[hal.Pin][]func()
}

// NewBoard creates a board with all pins released/low.
func NewBoard() *Board {
	return &Board{
		levels: make(map[hal.Pin]bool),
		edges:  make(map[hal.Pin][]func()),
	}
}

// Read returns the current level of a pin (true = pressed).
func (b *Board) Read(pin hal.Pin) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[pin]
}

// Write sets an output level.
func (b *Board) Write(pin hal.Pin, level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[pin] = level
}

// OnFallingEdge registers an edge callback for a pin.
func (b *Board) OnFallingEdge(pin hal.Pin, fn func()) error {
	if fn == nil {
		return fmt.Errorf("simhw: nil edge callback for pin %d", pin)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.edges[pin] = append(b.edges[pin], fn)
	return nil
}

// Press asserts a button. Edge callbacks fire synchronously on the calling
// goroutine, standing in for the interrupt context. Pressing an already
// pressed pin fires the callbacks again, simulating contact chatter.
func (b *Board) Press(pin hal.Pin) {
	b.mu.Lock()
	b.levels[pin] = true
	callbacks := append([]func(){}, b.edges[pin]...)
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Release deasserts a button.
func (b *Board) Release(pin hal.Pin) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[pin] = false
}

// Output returns the last written level of an output pin.
func (b *Board) Output(pin hal.Pin) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[pin]
}

// Compile-time interface satisfaction checks.
var (
	_ hal.GPIO        = (*Board)(nil)
	_ hal.EdgeWatcher = (*Board)(nil)
)
