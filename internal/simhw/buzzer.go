package simhw

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/roomgate/roomgate-go/pkg/hal"
)

// Beep is one recorded tone.
type Beep struct {
	FreqHz   uint
	Duration time.Duration
}

// Buzzer records played tones. A realtime buzzer additionally blocks for
// each tone's duration, matching the real driver's contract; the plain
// recording buzzer returns immediately to keep tests fast.
type Buzzer struct {
	mu       sync.Mutex
	beeps    []Beep
	realtime bool
	echo     io.Writer
}

// NewBuzzer creates a recording buzzer that does not block.
func NewBuzzer() *Buzzer {
	return &Buzzer{}
}

// NewRealtimeBuzzer creates a buzzer that blocks for each tone and prints
// it to w.
func NewRealtimeBuzzer(w io.Writer) *Buzzer {
	return &Buzzer{realtime: true, echo: w}
}

// Play records the tone, optionally echoing and blocking.
func (b *Buzzer) Play(freqHz uint, duration time.Duration) {
	b.mu.Lock()
	b.beeps = append(b.beeps, Beep{FreqHz: freqHz, Duration: duration})
	echo := b.echo
	realtime := b.realtime
	b.mu.Unlock()

	if echo != nil {
		fmt.Fprintf(echo, "♪ %dHz for %v\n", freqHz, duration)
	}
	if realtime {
		time.Sleep(duration)
	}
}

// Beeps returns all recorded tones.
func (b *Buzzer) Beeps() []Beep {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Beep{}, b.beeps...)
}

// Reset clears the recording.
func (b *Buzzer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beeps = nil
}

var _ hal.Buzzer = (*Buzzer)(nil)
