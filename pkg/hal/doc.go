// Package hal defines the driver interfaces the panel core renders through.
//
// The drivers are opaque to the core: GPIO levels, OLED glyph drawing,
// buzzer PWM and LED-matrix bit-stream encoding all live behind these
// interfaces. internal/simhw provides simulated implementations; a port to
// real hardware implements the same interfaces over the target's
// peripheral libraries.
//
// Input polarity is normalized by the driver: GPIO.Read returns true when
// the button is pressed, regardless of pull-up wiring.
package hal
