package hal

import "time"

// NoopGPIO discards writes and reads all inputs as released. Usable as a
// zero value.
type NoopGPIO struct{}

// Read always returns false.
func (NoopGPIO) Read(Pin) bool { return false }

// Write discards the level.
func (NoopGPIO) Write(Pin, bool) {}

// OnFallingEdge discards the callback.
func (NoopGPIO) OnFallingEdge(Pin, func()) error { return nil }

// NoopDisplay discards all drawing.
type NoopDisplay struct{}

// Clear does nothing.
func (NoopDisplay) Clear() {}

// DrawText discards the text.
func (NoopDisplay) DrawText(string, int, int) {}

// Flush does nothing.
func (NoopDisplay) Flush() error { return nil }

// NoopBuzzer discards tones without blocking.
type NoopBuzzer struct{}

// Play returns immediately.
func (NoopBuzzer) Play(uint, time.Duration) {}

// NoopMatrix discards frames.
type NoopMatrix struct{}

// Emit discards the frame.
func (NoopMatrix) Emit([MatrixPixels]Color) {}

// Compile-time interface satisfaction checks.
var (
	_ GPIO        = NoopGPIO{}
	_ EdgeWatcher = NoopGPIO{}
	_ Display     = NoopDisplay{}
	_ Buzzer      = NoopBuzzer{}
	_ Matrix      = NoopMatrix{}
)
