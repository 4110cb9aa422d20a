package simhw

import (
	"sync"

	"github.com/roomgate/roomgate-go/pkg/hal"
)

// Matrix records the frames emitted to the 5x5 LED matrix.
type Matrix struct {
	mu     sync.Mutex
	frame  [hal.MatrixPixels]hal.Color
	frames int
}

// NewMatrix creates a recording matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Emit records the frame.
func (m *Matrix) Emit(pixels [hal.MatrixPixels]hal.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = pixels
	m.frames++
}

// Frame returns the last emitted frame.
func (m *Matrix) Frame() [hal.MatrixPixels]hal.Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}

// Frames returns how many frames were emitted.
func (m *Matrix) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Lit reports whether any pixel of the last frame is on.
func (m *Matrix) Lit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.frame {
		if p != (hal.Color{}) {
			return true
		}
	}
	return false
}

var _ hal.Matrix = (*Matrix)(nil)
