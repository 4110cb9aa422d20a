package debounce

import (
	"testing"
	"time"
)

func TestGateFirstPressAccepted(t *testing.T) {
	g := NewGate(ButtonQuietPeriod)
	now := time.Now()

	if !g.Poll(true, now) {
		t.Error("Poll(pressed) on fresh gate = false, want true")
	}
}

func TestGateNotPressed(t *testing.T) {
	g := NewGate(ButtonQuietPeriod)
	now := time.Now()

	if g.Poll(false, now) {
		t.Error("Poll(not pressed) = true, want false")
	}
	// A released sample must not open the window for a later press.
	if !g.Poll(true, now.Add(time.Millisecond)) {
		t.Error("Poll(pressed) after released sample = false, want true")
	}
}

func TestGateQuietPeriod(t *testing.T) {
	g := NewGate(250 * time.Millisecond)
	start := time.Now()

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"First", 0, true},
		{"Bounce10ms", 10 * time.Millisecond, false},
		{"Bounce249ms", 249 * time.Millisecond, false},
		{"Boundary250ms", 250 * time.Millisecond, true},
		{"Bounce260ms", 260 * time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Poll(true, start.Add(tt.offset)); got != tt.want {
				t.Errorf("Poll at +%v = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestGateExactlyOnePerPress(t *testing.T) {
	g := NewGate(250 * time.Millisecond)
	start := time.Now()

	// A held button sampled every 10ms yields exactly one acceptance
	// within the quiet period.
	accepted := 0
	for i := 0; i < 25; i++ {
		if g.Poll(true, start.Add(time.Duration(i)*10*time.Millisecond)) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Errorf("accepted %d presses within quiet period, want 1", accepted)
	}
}

func TestGateHeldRefiresPerQuietPeriod(t *testing.T) {
	g := NewGate(250 * time.Millisecond)
	start := time.Now()

	// A button held across several quiet periods re-fires once per
	// period: samples every 10ms over 550ms accept at 0, 250 and 500ms.
	accepted := 0
	for i := 0; i < 55; i++ {
		if g.Poll(true, start.Add(time.Duration(i)*10*time.Millisecond)) {
			accepted++
		}
	}
	if accepted != 3 {
		t.Errorf("accepted %d presses over 550ms held, want 3", accepted)
	}
}

func TestGateIndependentInstances(t *testing.T) {
	entry := NewGate(ButtonQuietPeriod)
	exit := NewGate(ButtonQuietPeriod)
	now := time.Now()

	if !entry.Poll(true, now) {
		t.Error("entry gate rejected first press")
	}
	// The exit gate has its own state; the entry press must not count
	// against it.
	if !exit.Poll(true, now.Add(time.Millisecond)) {
		t.Error("exit gate rejected press after unrelated entry press")
	}
}

func TestGateResetWindow(t *testing.T) {
	g := NewGate(ResetQuietPeriod)
	start := time.Now()

	if !g.Poll(true, start) {
		t.Fatal("first reset edge rejected")
	}
	// Edge-time evaluation: the second edge inside the window is dropped
	// regardless of whether anything consumed the first.
	if g.Poll(true, start.Add(299*time.Millisecond)) {
		t.Error("second edge at +299ms accepted, want rejected")
	}
	if !g.Poll(true, start.Add(301*time.Millisecond)) {
		t.Error("edge at +301ms rejected, want accepted")
	}
}
