// Command roomgate-panel runs the occupancy control panel on simulated
// hardware.
//
// The panel keeps a bounded occupancy count driven by entry and exit
// buttons, a reset input, and renders the state through a display, a
// buzzer and an LED matrix. All peripherals are simulated; the
// interactive console stands in for the physical buttons.
//
// Usage:
//
//	roomgate-panel [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-capacity int      Maximum occupancy (overrides config)
//	-panel-id string   Panel identifier for trace events
//	-trace string      Write a CBOR event trace to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-interactive       Run the interactive console (default true)
//
// Examples:
//
//	# Run with defaults and the interactive console
//	roomgate-panel
//
//	# Run with a config file and an event trace
//	roomgate-panel -config panel.yaml -trace panel.rlog
//
//	# Headless with a smaller room
//	roomgate-panel -capacity 4 -interactive=false
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/roomgate/roomgate-go/cmd/roomgate-panel/interactive"
	"github.com/roomgate/roomgate-go/internal/simhw"
	"github.com/roomgate/roomgate-go/pkg/config"
	"github.com/roomgate/roomgate-go/pkg/hal"
	"github.com/roomgate/roomgate-go/pkg/panel"
	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

type flagConfig struct {
	ConfigFile  string
	Capacity    int
	PanelID     string
	TraceFile   string
	LogLevel    string
	Interactive bool
}

var flags flagConfig

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.IntVar(&flags.Capacity, "capacity", 0, "Maximum occupancy (overrides config)")
	flag.StringVar(&flags.PanelID, "panel-id", "", "Panel identifier for trace events")
	flag.StringVar(&flags.TraceFile, "trace", "", "Write a CBOR event trace to this file")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&flags.Interactive, "interactive", true, "Run the interactive console")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	trace, closeTrace, err := buildTrace(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
		os.Exit(1)
	}
	defer closeTrace()

	board := simhw.NewBoard()
	pcfg := panelConfig(cfg, logger, trace)

	peripherals := panel.Peripherals{
		GPIO:  board,
		Edges: board,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var console *interactive.Console
	if flags.Interactive {
		// Peripheral echo goes through the console writer so frames do
		// not mangle the prompt.
		console, err = interactive.New(board, pcfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start console: %v\n", err)
			os.Exit(1)
		}
		peripherals.Display = simhw.NewEchoDisplay(console.Stdout())
		peripherals.Buzzer = simhw.NewRealtimeBuzzer(console.Stdout())
		peripherals.Matrix = simhw.NewMatrix()
	} else {
		peripherals.Display = simhw.NewEchoDisplay(os.Stdout)
		peripherals.Buzzer = simhw.NewRealtimeBuzzer(os.Stdout)
		peripherals.Matrix = simhw.NewMatrix()
	}

	svc, err := panel.New(pcfg, peripherals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create panel: %v\n", err)
		os.Exit(1)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- svc.Run(ctx)
	}()

	if console != nil {
		console.Bind(svc)
		go console.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}

	<-runErr
}

// loadConfig merges the config file with flag overrides and validates the
// result.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if flags.ConfigFile != "" {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Capacity > 0 {
		cfg.Capacity = flags.Capacity
	}
	if flags.PanelID != "" {
		cfg.PanelID = flags.PanelID
	}
	if flags.TraceFile != "" {
		cfg.TraceFile = flags.TraceFile
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if cfg.PanelID == "" {
		cfg.PanelID = "panel-" + uuid.New().String()[:8]
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildTrace assembles the trace logger: the CBOR file trace when
// configured, plus the slog adapter at debug level.
func buildTrace(cfg config.Config, logger *slog.Logger) (tracelog.Logger, func(), error) {
	var loggers []tracelog.Logger

	closeTrace := func() {}
	if cfg.TraceFile != "" {
		fl, err := tracelog.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fl)
		closeTrace = func() { _ = fl.Close() }
	}
	if cfg.LogLevel == "debug" {
		loggers = append(loggers, tracelog.NewSlogAdapter(logger))
	}

	switch len(loggers) {
	case 0:
		return tracelog.NoopLogger{}, closeTrace, nil
	case 1:
		return loggers[0], closeTrace, nil
	default:
		return tracelog.NewMultiLogger(loggers...), closeTrace, nil
	}
}

func panelConfig(cfg config.Config, logger *slog.Logger, trace tracelog.Logger) panel.Config {
	pcfg := panel.DefaultConfig()
	pcfg.Capacity = cfg.Capacity
	pcfg.PanelID = cfg.PanelID
	pcfg.EntryPin = hal.Pin(cfg.Pins.Entry)
	pcfg.ExitPin = hal.Pin(cfg.Pins.Exit)
	pcfg.ResetPin = hal.Pin(cfg.Pins.Reset)
	pcfg.RedPin = hal.Pin(cfg.Pins.LEDRed)
	pcfg.GreenPin = hal.Pin(cfg.Pins.LEDGreen)
	pcfg.BluePin = hal.Pin(cfg.Pins.LEDBlue)
	pcfg.ButtonQuiet = cfg.Timing.ButtonQuiet()
	pcfg.ResetQuiet = cfg.Timing.ResetQuiet()
	pcfg.PollInterval = cfg.Timing.Poll()
	pcfg.DisplayRefresh = cfg.Timing.Display()
	pcfg.ToneRefresh = cfg.Timing.Tone()
	pcfg.IndicatorRefresh = cfg.Timing.Indicator()
	pcfg.Logger = logger
	pcfg.Trace = trace
	return pcfg
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
