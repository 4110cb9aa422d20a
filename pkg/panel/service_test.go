package panel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/roomgate/roomgate-go/internal/simhw"
	"github.com/roomgate/roomgate-go/pkg/hal"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// captureTrace records trace events for assertions.
type captureTrace struct {
	mu     sync.Mutex
	events []tracelog.Event
}

func (c *captureTrace) Log(ev tracelog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureTrace) byCategory(cat tracelog.Category) []tracelog.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []tracelog.Event
	for _, ev := range c.events {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}

type testRig struct {
	svc     *Service
	board   *simhw.Board
	display *simhw.Display
	buzzer  *simhw.Buzzer
	matrix  *simhw.Matrix
	trace   *captureTrace
	cfg     Config
	cancel  context.CancelFunc
	done    chan struct{}
}

// testConfig returns a configuration with cadences short enough for tests
// while keeping the debounce window wide enough that one held press is
// accepted exactly once.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PanelID = "test-panel"
	cfg.ButtonQuiet = 200 * time.Millisecond
	cfg.ResetQuiet = time.Millisecond
	cfg.PollInterval = 2 * time.Millisecond
	cfg.DisplayRefresh = 5 * time.Millisecond
	cfg.ToneRefresh = 5 * time.Millisecond
	cfg.IndicatorRefresh = 5 * time.Millisecond
	cfg.ResetHold = 10 * time.Millisecond
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func startRig(t *testing.T, cfg Config) *testRig {
	t.Helper()

	rig := &testRig{
		board:   simhw.NewBoard(),
		display: simhw.NewDisplay(),
		buzzer:  simhw.NewBuzzer(),
		matrix:  simhw.NewMatrix(),
		trace:   &captureTrace{},
		cfg:     cfg,
	}
	cfg.Trace = rig.trace

	svc, err := New(cfg, Peripherals{
		GPIO:    rig.board,
		Edges:   rig.board,
		Display: rig.display,
		Buzzer:  rig.buzzer,
		Matrix:  rig.matrix,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	rig.svc = svc

	ctx, cancel := context.WithCancel(context.Background())
	rig.cancel = cancel
	rig.done = make(chan struct{})
	go func() {
		defer close(rig.done)
		_ = svc.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-rig.done:
		case <-time.After(2 * time.Second):
			t.Error("service did not stop")
		}
	})

	return rig
}

// tap presses a button briefly, short enough that the poll loop sees at
// most one debounced acceptance, then waits out the quiet window.
func (r *testRig) tap(pin hal.Pin) {
	r.board.Press(pin)
	time.Sleep(30 * time.Millisecond)
	r.board.Release(pin)
	time.Sleep(r.cfg.ButtonQuiet)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewRejectsMissingPeripherals(t *testing.T) {
	board := simhw.NewBoard()
	full := Peripherals{
		GPIO:    board,
		Edges:   board,
		Display: simhw.NewDisplay(),
		Buzzer:  simhw.NewBuzzer(),
		Matrix:  simhw.NewMatrix(),
	}

	tests := []struct {
		name   string
		mutate func(*Peripherals)
	}{
		{"gpio", func(p *Peripherals) { p.GPIO = nil }},
		{"edges", func(p *Peripherals) { p.Edges = nil }},
		{"display", func(p *Peripherals) { p.Display = nil }},
		{"buzzer", func(p *Peripherals) { p.Buzzer = nil }},
		{"matrix", func(p *Peripherals) { p.Matrix = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := full
			tt.mutate(&p)
			if _, err := New(testConfig(), p); !errors.Is(err, ErrNilPeripheral) {
				t.Errorf("New() error = %v, want ErrNilPeripheral", err)
			}
		})
	}
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 1
	board := simhw.NewBoard()
	_, err := New(cfg, Peripherals{
		GPIO:    board,
		Edges:   board,
		Display: simhw.NewDisplay(),
		Buzzer:  simhw.NewBuzzer(),
		Matrix:  simhw.NewMatrix(),
	})
	if err == nil {
		t.Fatal("New() accepted capacity 1")
	}
}

func TestEntryAndExit(t *testing.T) {
	rig := startRig(t, testConfig())

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 1
	})

	rig.tap(rig.cfg.ExitPin)
	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 0
	})

	access := rig.trace.byCategory(tracelog.CategoryAccess)
	if len(access) != 2 {
		t.Fatalf("got %d access events, want 2", len(access))
	}
	if access[0].Access.Direction != tracelog.DirectionEntry || !access[0].Access.Accepted {
		t.Errorf("first event = %+v, want accepted entry", access[0].Access)
	}
	if access[1].Access.Direction != tracelog.DirectionExit || !access[1].Access.Accepted {
		t.Errorf("second event = %+v, want accepted exit", access[1].Access)
	}
}

func TestHeldButtonCountsOnce(t *testing.T) {
	rig := startRig(t, testConfig())

	rig.board.Press(rig.cfg.EntryPin)
	time.Sleep(80 * time.Millisecond)
	rig.board.Release(rig.cfg.EntryPin)

	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 1
	})
	time.Sleep(50 * time.Millisecond)
	if occ := rig.svc.Counter().Observe().Occupancy; occ != 1 {
		t.Errorf("occupancy = %d after one held press, want 1", occ)
	}
}

func TestExitOnEmptyRoomIsSilent(t *testing.T) {
	rig := startRig(t, testConfig())

	rig.tap(rig.cfg.ExitPin)

	waitFor(t, time.Second, func() bool {
		return len(rig.trace.byCategory(tracelog.CategoryAccess)) == 1
	})
	ev := rig.trace.byCategory(tracelog.CategoryAccess)[0]
	if ev.Access.Accepted || ev.Access.Reason != "empty" {
		t.Errorf("event = %+v, want rejected with reason empty", ev.Access)
	}
	if occ := rig.svc.Counter().Observe().Occupancy; occ != 0 {
		t.Errorf("occupancy = %d, want 0", occ)
	}
	if len(rig.buzzer.Beeps()) != 0 {
		t.Error("empty-room exit produced tones")
	}
}

func TestCapacityRejectionAndAlert(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 2
	rig := startRig(t, cfg)

	rig.tap(rig.cfg.EntryPin)
	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 2
	})

	// One more press at capacity: rejected, occupancy unchanged, and the
	// tone observer plays the prolonged alert.
	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return len(rig.buzzer.Beeps()) > 0
	})

	if occ := rig.svc.Counter().Observe().Occupancy; occ != 2 {
		t.Errorf("occupancy = %d, want 2", occ)
	}
	beep := rig.buzzer.Beeps()[0]
	if beep.FreqHz != 200 || beep.Duration != 200*time.Millisecond {
		t.Errorf("alert beep = %+v, want 200Hz 200ms", beep)
	}

	access := rig.trace.byCategory(tracelog.CategoryAccess)
	last := access[len(access)-1]
	if last.Access.Accepted || last.Access.Reason != "capacity" {
		t.Errorf("last access event = %+v, want rejected with reason capacity", last.Access)
	}
}

func TestResetDrainsAndConfirms(t *testing.T) {
	rig := startRig(t, testConfig())

	rig.tap(rig.cfg.EntryPin)
	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 2
	})

	rig.board.Press(rig.cfg.ResetPin)
	rig.board.Release(rig.cfg.ResetPin)

	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 0
	})
	waitFor(t, time.Second, func() bool {
		return len(rig.buzzer.Beeps()) >= 4
	})

	beeps := rig.buzzer.Beeps()
	wantFreqs := []uint{100, 200, 100, 200}
	for i, want := range wantFreqs {
		if beeps[i].FreqHz != want || beeps[i].Duration != 100*time.Millisecond {
			t.Errorf("beep[%d] = %+v, want %dHz 100ms", i, beeps[i], want)
		}
	}

	resets := rig.trace.byCategory(tracelog.CategoryReset)
	if len(resets) != 1 {
		t.Fatalf("got %d reset events, want 1", len(resets))
	}
	if resets[0].Reset.Drained != 2 {
		t.Errorf("drained = %d, want 2", resets[0].Reset.Drained)
	}

	// The confirmation frame only stays up for ResetHold before the forced
	// redraw replaces it, so search the flushed-frame history.
	waitFor(t, time.Second, func() bool {
		return rig.display.Saw("RESET")
	})
}

func TestResetBurstCoalesces(t *testing.T) {
	cfg := testConfig()
	// Let every press through the interrupt gate so coalescing is down to
	// the signal, not the debounce window.
	cfg.ResetQuiet = time.Nanosecond
	rig := startRig(t, cfg)

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 1
	})

	// Chatter: several edges before the coordinator can wake.
	for i := 0; i < 5; i++ {
		rig.board.Press(rig.cfg.ResetPin)
		rig.board.Release(rig.cfg.ResetPin)
	}

	waitFor(t, time.Second, func() bool {
		return rig.svc.Counter().Observe().Occupancy == 0
	})
	time.Sleep(50 * time.Millisecond)

	resets := rig.trace.byCategory(tracelog.CategoryReset)
	if len(resets) < 1 || len(resets) > 5 {
		t.Errorf("got %d reset events from a 5-press burst", len(resets))
	}
	// Every drain past the first found an already empty room.
	for i, ev := range resets[1:] {
		if ev.Reset.Drained != 0 {
			t.Errorf("reset[%d] drained = %d, want 0", i+1, ev.Reset.Drained)
		}
	}
}

func TestDisplayShowsOccupancyAndStatus(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 2
	rig := startRig(t, cfg)

	waitFor(t, time.Second, func() bool {
		return rig.display.Contains("OCCUPANCY: 0")
	})
	if !rig.display.Contains(displayTitle) {
		t.Error("frame is missing the title line")
	}
	if !rig.display.Contains(statusOpen) {
		t.Errorf("frame at occupancy 0 is missing %q", statusOpen)
	}

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.display.Contains(statusOneSlot)
	})

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return rig.display.Contains(statusFull)
	})
}

func TestDisplayRedrawIsEdgeTriggered(t *testing.T) {
	rig := startRig(t, testConfig())

	waitFor(t, time.Second, func() bool {
		return rig.display.Flushes() >= 1
	})
	flushes := rig.display.Flushes()

	// Many refresh ticks pass with no occupancy change; the frame count
	// must not grow.
	time.Sleep(100 * time.Millisecond)
	if got := rig.display.Flushes(); got != flushes {
		t.Errorf("flushes grew from %d to %d with occupancy unchanged", flushes, got)
	}
}

func TestIndicatorTracksBand(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 3
	rig := startRig(t, cfg)

	type rgb struct{ r, g, b bool }
	leds := func() rgb {
		return rgb{
			r: rig.board.Output(rig.cfg.RedPin),
			g: rig.board.Output(rig.cfg.GreenPin),
			b: rig.board.Output(rig.cfg.BluePin),
		}
	}

	waitFor(t, time.Second, func() bool {
		return leds() == rgb{b: true}
	})

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return leds() == rgb{g: true}
	})

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return leds() == rgb{r: true, g: true}
	})

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return leds() == rgb{r: true}
	})
}

func TestMatrixShowsArrowInBandColor(t *testing.T) {
	rig := startRig(t, testConfig())

	// The blink phase starts with the arrow on.
	waitFor(t, time.Second, func() bool {
		return rig.matrix.Lit()
	})

	frame := rig.matrix.Frame()
	// Tip of the arrow at (row 0, col 2); corners stay dark.
	if frame[2] != hal.ColorBlue {
		t.Errorf("arrow pixel = %+v, want blue for an empty room", frame[2])
	}
	if frame[0] != (hal.Color{}) {
		t.Errorf("corner pixel = %+v, want off", frame[0])
	}
}

func TestRunIDStampsEvents(t *testing.T) {
	rig := startRig(t, testConfig())

	runID := rig.svc.RunID()
	if runID == "" {
		t.Fatal("run ID empty after construction")
	}

	// Status readers poll the run ID while the panel tasks are live, the
	// way the console status command does.
	stop := make(chan struct{})
	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if got := rig.svc.RunID(); got != runID {
					t.Errorf("run ID changed mid-run: %q", got)
					return
				}
			}
		}()
	}

	rig.tap(rig.cfg.EntryPin)
	waitFor(t, time.Second, func() bool {
		return len(rig.trace.byCategory(tracelog.CategoryAccess)) == 1
	})
	close(stop)
	readers.Wait()

	ev := rig.trace.byCategory(tracelog.CategoryAccess)[0]
	if ev.RunID != runID {
		t.Errorf("event run ID = %q, want %q", ev.RunID, runID)
	}
	if ev.PanelID != "test-panel" {
		t.Errorf("event panel ID = %q, want test-panel", ev.PanelID)
	}
}
