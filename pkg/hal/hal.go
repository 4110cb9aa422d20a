package hal

import "time"

// Pin identifies a GPIO pin.
type Pin uint8

// MatrixPixels is the pixel count of the 5x5 LED matrix.
const MatrixPixels = 25

// Color is an RGB pixel value for the matrix and the indicator LEDs.
type Color struct {
	R, G, B uint8
}

// Predefined indicator colors.
var (
	ColorOff    = Color{}
	ColorRed    = Color{R: 75}
	ColorGreen  = Color{G: 75}
	ColorBlue   = Color{B: 75}
	ColorYellow = Color{R: 75, G: 75}
)

// GPIO reads and writes digital pin levels. Read returns true when an
// input is pressed; Write(true) lights an output.
type GPIO interface {
	Read(pin Pin) bool
	Write(pin Pin, level bool)
}

// EdgeWatcher delivers falling-edge notifications for an input pin. The
// callback runs in interrupt context: it must not block and must not touch
// shared state beyond raising a signal.
type EdgeWatcher interface {
	OnFallingEdge(pin Pin, fn func()) error
}

// Display is a small text display. Drawing is buffered; Flush pushes the
// frame to the panel.
type Display interface {
	Clear()
	DrawText(s string, x, y int)
	Flush() error
}

// Buzzer plays a single tone. Play blocks for the full duration.
type Buzzer interface {
	Play(freqHz uint, duration time.Duration)
}

// Matrix drives the LED matrix with one full frame per call.
type Matrix interface {
	Emit(pixels [MatrixPixels]Color)
}
