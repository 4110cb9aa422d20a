package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roomgate/roomgate-go/pkg/debounce"
	"github.com/roomgate/roomgate-go/pkg/occupancy"
	"github.com/roomgate/roomgate-go/pkg/resetsig"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

// ErrNilPeripheral indicates a missing driver handle at construction.
// Running without a usable peripheral is a startup failure, not a
// condition to limp through.
var ErrNilPeripheral = errors.New("nil peripheral handle")

// Service is the assembled access-control panel.
type Service struct {
	cfg Config
	p   Peripherals

	counter *occupancy.Counter
	reset   *resetsig.Signal

	logger *slog.Logger
	trace  tracelog.Logger
	runID  string
}

// New creates a panel service. It validates the capacity and requires all
// peripheral handles; a missing driver is fatal at startup.
func New(cfg Config, p Peripherals) (*Service, error) {
	counter, err := occupancy.New(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	switch {
	case p.GPIO == nil:
		return nil, fmt.Errorf("%w: gpio", ErrNilPeripheral)
	case p.Edges == nil:
		return nil, fmt.Errorf("%w: edge watcher", ErrNilPeripheral)
	case p.Display == nil:
		return nil, fmt.Errorf("%w: display", ErrNilPeripheral)
	case p.Buzzer == nil:
		return nil, fmt.Errorf("%w: buzzer", ErrNilPeripheral)
	case p.Matrix == nil:
		return nil, fmt.Errorf("%w: matrix", ErrNilPeripheral)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var trace tracelog.Logger = cfg.Trace
	if trace == nil {
		trace = tracelog.NoopLogger{}
	}

	return &Service{
		cfg:     cfg,
		p:       p,
		counter: counter,
		reset:   resetsig.New(),
		logger:  logger,
		trace:   trace,
		runID:   uuid.New().String(),
	}, nil
}

// Counter exposes the shared occupancy record, mainly for status commands
// and tests.
func (s *Service) Counter() *occupancy.Counter {
	return s.counter
}

// RunID returns the trace run identifier. It is assigned at construction
// and immutable afterwards, so concurrent readers need no lock.
func (s *Service) RunID() string {
	return s.runID
}

// Run wires the reset interrupt and runs all panel tasks until ctx is
// cancelled. Under normal operation it does not return.
func (s *Service) Run(ctx context.Context) error {
	// The edge callback is the interrupt path: debounce check and signal
	// raise only, evaluated against the monotonic clock at edge time.
	resetGate := debounce.NewGate(s.cfg.ResetQuiet)
	err := s.p.Edges.OnFallingEdge(s.cfg.ResetPin, func() {
		if resetGate.Poll(true, time.Now()) {
			s.reset.Raise()
		}
	})
	if err != nil {
		return fmt.Errorf("wiring reset interrupt: %w", err)
	}

	s.logger.Info("panel started",
		"run_id", s.runID,
		"panel_id", s.cfg.PanelID,
		"capacity", s.cfg.Capacity,
	)

	var wg sync.WaitGroup
	tasks := []func(context.Context){
		s.entryTask,
		s.exitTask,
		s.resetTask,
		s.displayTask,
		s.toneTask,
		s.indicatorTask,
	}
	for _, task := range tasks {
		wg.Add(1)
		go func(run func(context.Context)) {
			defer wg.Done()
			run(ctx)
		}(task)
	}
	wg.Wait()

	s.logger.Info("panel stopped", "run_id", s.runID)
	return ctx.Err()
}

// event returns a trace event stamped with the run and panel identity.
func (s *Service) event(cat tracelog.Category) tracelog.Event {
	return tracelog.Event{
		Timestamp: time.Now(),
		RunID:     s.runID,
		PanelID:   s.cfg.PanelID,
		Category:  cat,
	}
}

// traceBandChange emits a band transition event when the crossing between
// oldOcc and newOcc changed the band.
func (s *Service) traceBandChange(oldOcc, newOcc int) {
	oldBand := occupancy.BandOf(oldOcc, s.cfg.Capacity)
	newBand := occupancy.BandOf(newOcc, s.cfg.Capacity)
	if oldBand == newBand {
		return
	}
	ev := s.event(tracelog.CategoryBand)
	ev.Band = &tracelog.BandChangeEvent{
		OldBand:   oldBand.String(),
		NewBand:   newBand.String(),
		Occupancy: newOcc,
	}
	s.trace.Log(ev)
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
