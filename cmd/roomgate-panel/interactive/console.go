// Package interactive provides the interactive command-line interface
// for the simulated panel.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/roomgate/roomgate-go/internal/simhw"
	"github.com/roomgate/roomgate-go/pkg/hal"
	"github.com/roomgate/roomgate-go/pkg/panel"
)

// pressHold is how long a simulated press stays asserted. Long enough for
// the poll loop to sample it, short of the debounce window.
const pressHold = 50 * time.Millisecond

// Console drives the simulated board from a readline prompt.
type Console struct {
	svc   *panel.Service
	board *simhw.Board
	cfg   panel.Config
	rl    *readline.Instance
}

// New creates a console driving the simulated board. The service is
// attached with Bind once it exists; the echo peripherals need the
// console's writer first.
func New(board *simhw.Board, cfg panel.Config) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "panel> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		board: board,
		cfg:   cfg,
		rl:    rl,
	}, nil
}

// Bind attaches the running service, enabling the status command.
func (c *Console) Bind(svc *panel.Service) {
	c.svc = svc
}

// Stdout returns a writer that coordinates with the readline prompt. Use
// it for peripheral echo output so frames do not mangle the input line.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "enter", "e":
			c.tap(c.cfg.EntryPin)

		case "exit", "x":
			c.tap(c.cfg.ExitPin)

		case "reset", "r":
			c.board.Press(c.cfg.ResetPin)
			c.board.Release(c.cfg.ResetPin)

		case "chatter":
			c.cmdChatter(args)

		case "hold":
			c.cmdHold(args)

		case "status", "s":
			c.cmdStatus()

		case "quit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

// tap simulates one clean button press.
func (c *Console) tap(pin hal.Pin) {
	c.board.Press(pin)
	time.Sleep(pressHold)
	c.board.Release(pin)
}

// cmdChatter fires a burst of reset edges, the way a bouncy contact
// would. The debounce window and the coalescing signal reduce it to a
// single reset.
func (c *Console) cmdChatter(args []string) {
	n := 10
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintln(c.rl.Stdout(), "Usage: chatter [count]")
			return
		}
		n = v
	}
	for i := 0; i < n; i++ {
		c.board.Press(c.cfg.ResetPin)
		c.board.Release(c.cfg.ResetPin)
		time.Sleep(time.Millisecond)
	}
	fmt.Fprintf(c.rl.Stdout(), "Fired %d reset edges\n", n)
}

// cmdHold keeps a button asserted for a while. A hold within the quiet
// window is counted once; holding past it re-fires the gate once per
// window, so the default 500ms hold counts twice against the 250ms
// button window.
func (c *Console) cmdHold(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: hold <enter|exit> [ms]")
		return
	}

	var pin hal.Pin
	switch args[0] {
	case "enter":
		pin = c.cfg.EntryPin
	case "exit":
		pin = c.cfg.ExitPin
	default:
		fmt.Fprintln(c.rl.Stdout(), "Usage: hold <enter|exit> [ms]")
		return
	}

	dur := 500 * time.Millisecond
	if len(args) > 1 {
		ms, err := strconv.Atoi(args[1])
		if err != nil || ms < 1 {
			fmt.Fprintln(c.rl.Stdout(), "Usage: hold <enter|exit> [ms]")
			return
		}
		dur = time.Duration(ms) * time.Millisecond
	}

	c.board.Press(pin)
	time.Sleep(dur)
	c.board.Release(pin)
	fmt.Fprintf(c.rl.Stdout(), "Held %s for %v\n", args[0], dur)
}

func (c *Console) cmdStatus() {
	if c.svc == nil {
		fmt.Fprintln(c.rl.Stdout(), "Panel not running yet")
		return
	}
	snap := c.svc.Counter().Observe()
	out := c.rl.Stdout()
	fmt.Fprintf(out, "Run:       %s\n", c.svc.RunID())
	fmt.Fprintf(out, "Occupancy: %d / %d\n", snap.Occupancy, snap.Capacity)
	fmt.Fprintf(out, "Band:      %s\n", snap.Band())
	fmt.Fprintf(out, "Blocked:   %v\n", snap.Blocked)
}

func (c *Console) printHelp() {
	fmt.Fprint(c.rl.Stdout(), `
Commands:
  enter, e        Press the entry button
  exit, x         Press the exit button
  reset, r        Press the reset button
  chatter [n]     Fire n rapid reset edges (default 10)
  hold <btn> [ms] Hold a button down (enter or exit)
  status, s       Show occupancy and band
  help, ?         Show this help
  quit, q         Exit
`)
}
