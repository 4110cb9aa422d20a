package simhw

import (
	"fmt"
	"io"
	"sync"

	"github.com/roomgate/roomgate-go/pkg/hal"
)

// Text is one positioned string in a display frame.
type Text struct {
	S    string
	X, Y int
}

// Display records the frames rendered through it. With a non-nil echo
// writer it also prints each flushed frame.
type Display struct {
	mu      sync.Mutex
	pending []Text
	frame   []Text
	history [][]Text
	flushes int
	echo    io.Writer
}

// NewDisplay creates a recording display.
func NewDisplay() *Display {
	return &Display{}
}

// NewEchoDisplay creates a display that prints flushed frames to w.
func NewEchoDisplay(w io.Writer) *Display {
	return &Display{echo: w}
}

// Clear discards the pending frame.
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
}

// DrawText buffers one string.
func (d *Display) DrawText(s string, x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, Text{S: s, X: x, Y: y})
}

// Flush commits the pending frame.
func (d *Display) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = append([]Text{}, d.pending...)
	d.history = append(d.history, d.frame)
	d.flushes++
	if d.echo != nil {
		fmt.Fprintln(d.echo, "┌─ display ─────────────┐")
		for _, t := range d.frame {
			fmt.Fprintf(d.echo, "│ %-21s │\n", t.S)
		}
		fmt.Fprintln(d.echo, "└───────────────────────┘")
	}
	return nil
}

// Frame returns the last flushed frame.
func (d *Display) Frame() []Text {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Text{}, d.frame...)
}

// Flushes returns how many frames were flushed.
func (d *Display) Flushes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushes
}

// Contains reports whether the last flushed frame contains the string.
func (d *Display) Contains(s string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.frame {
		if t.S == s {
			return true
		}
	}
	return false
}

// Saw reports whether any flushed frame contained the string. Short-lived
// frames like the reset confirmation are overwritten by the next redraw,
// so checking only the last frame would race the refresh cadence.
func (d *Display) Saw(s string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, frame := range d.history {
		for _, t := range frame {
			if t.S == s {
				return true
			}
		}
	}
	return false
}

var _ hal.Display = (*Display)(nil)
