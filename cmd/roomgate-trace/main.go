// Command roomgate-trace is a tool for viewing and analyzing panel trace
// files.
//
// Trace files are created by roomgate-panel with the -trace flag.
//
// Usage:
//
//	roomgate-trace <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	roomgate-trace view panel.rlog
//
//	# View only rejected and accepted entries
//	roomgate-trace view -direction entry panel.rlog
//
//	# Export to JSONL
//	roomgate-trace export panel.rlog > panel.jsonl
//
//	# Show statistics
//	roomgate-trace stats panel.rlog
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/roomgate/roomgate-go/pkg/tracelog"
)

const usage = `roomgate-trace - Panel Trace Analyzer

Usage:
  roomgate-trace <command> [flags] <file.rlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL
  stats    Show statistics about the trace file

Use "roomgate-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the shared filter flags on a flag set.
func filterFlags(fs *flag.FlagSet) (category, direction, runID, panelID *string) {
	category = fs.String("category", "", "Filter by category (access, reset, band, alert)")
	direction = fs.String("direction", "", "Filter by direction (entry, exit)")
	runID = fs.String("run", "", "Filter by run ID")
	panelID = fs.String("panel", "", "Filter by panel ID")
	return
}

func buildFilter(category, direction, runID, panelID string) (tracelog.Filter, error) {
	filter := tracelog.Filter{RunID: runID, PanelID: panelID}

	if category != "" {
		var c tracelog.Category
		switch category {
		case "access":
			c = tracelog.CategoryAccess
		case "reset":
			c = tracelog.CategoryReset
		case "band":
			c = tracelog.CategoryBand
		case "alert":
			c = tracelog.CategoryAlert
		default:
			return filter, fmt.Errorf("unknown category: %s", category)
		}
		filter.Category = &c
	}

	if direction != "" {
		var d tracelog.Direction
		switch direction {
		case "entry":
			d = tracelog.DirectionEntry
		case "exit":
			d = tracelog.DirectionExit
		default:
			return filter, fmt.Errorf("unknown direction: %s", direction)
		}
		filter.Direction = &d
	}

	return filter, nil
}

func openReader(fs *flag.FlagSet, filter tracelog.Filter) *tracelog.Reader {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	reader, err := tracelog.NewFilteredReader(fs.Arg(0), filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace file: %v\n", err)
		os.Exit(1)
	}
	return reader
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	category, direction, runID, panelID := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	filter, err := buildFilter(*category, *direction, *runID, *panelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reader := openReader(fs, filter)
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatEvent(event))
	}
}

// formatEvent renders one event as a single line.
func formatEvent(ev tracelog.Event) string {
	ts := ev.Timestamp.Format("15:04:05.000")
	prefix := fmt.Sprintf("%s  %-6s", ts, ev.Category)

	switch {
	case ev.Access != nil:
		verdict := "accepted"
		if !ev.Access.Accepted {
			verdict = "rejected (" + ev.Access.Reason + ")"
		}
		return fmt.Sprintf("%s %-5s %s, occupancy=%d",
			prefix, ev.Access.Direction, verdict, ev.Access.Occupancy)
	case ev.Reset != nil:
		return fmt.Sprintf("%s drained %d", prefix, ev.Reset.Drained)
	case ev.Band != nil:
		return fmt.Sprintf("%s %s -> %s, occupancy=%d",
			prefix, ev.Band.OldBand, ev.Band.NewBand, ev.Band.Occupancy)
	case ev.Alert != nil:
		return fmt.Sprintf("%s %s", prefix, ev.Alert.Kind)
	default:
		return prefix
	}
}

// jsonEvent is the JSONL export shape.
type jsonEvent struct {
	Timestamp time.Time                 `json:"timestamp"`
	RunID     string                    `json:"run_id"`
	PanelID   string                    `json:"panel_id,omitempty"`
	Category  string                    `json:"category"`
	Access    *jsonAccess               `json:"access,omitempty"`
	Reset     *tracelog.ResetEvent      `json:"reset,omitempty"`
	Band      *tracelog.BandChangeEvent `json:"band,omitempty"`
	Alert     *tracelog.AlertEvent      `json:"alert,omitempty"`
}

type jsonAccess struct {
	Direction string `json:"direction"`
	Accepted  bool   `json:"accepted"`
	Occupancy int    `json:"occupancy"`
	Reason    string `json:"reason,omitempty"`
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	category, direction, runID, panelID := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	filter, err := buildFilter(*category, *direction, *runID, *panelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reader := openReader(fs, filter)
	defer reader.Close()

	enc := json.NewEncoder(os.Stdout)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
			os.Exit(1)
		}

		out := jsonEvent{
			Timestamp: event.Timestamp,
			RunID:     event.RunID,
			PanelID:   event.PanelID,
			Category:  event.Category.String(),
			Reset:     event.Reset,
			Band:      event.Band,
			Alert:     event.Alert,
		}
		if event.Access != nil {
			out.Access = &jsonAccess{
				Direction: event.Access.Direction.String(),
				Accepted:  event.Access.Accepted,
				Occupancy: event.Access.Occupancy,
				Reason:    event.Access.Reason,
			}
		}
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding event: %v\n", err)
			os.Exit(1)
		}
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	reader := openReader(fs, tracelog.Filter{})
	defer reader.Close()

	var (
		total      int
		byCategory = map[tracelog.Category]int{}
		accepted   int
		rejected   int
		drained    int
		first      time.Time
		last       time.Time
		runs       = map[string]bool{}
	)

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
			os.Exit(1)
		}

		total++
		byCategory[event.Category]++
		runs[event.RunID] = true
		if first.IsZero() || event.Timestamp.Before(first) {
			first = event.Timestamp
		}
		if event.Timestamp.After(last) {
			last = event.Timestamp
		}
		if event.Access != nil {
			if event.Access.Accepted {
				accepted++
			} else {
				rejected++
			}
		}
		if event.Reset != nil {
			drained += event.Reset.Drained
		}
	}

	fmt.Printf("Events:    %d\n", total)
	fmt.Printf("Runs:      %d\n", len(runs))
	if total > 0 {
		fmt.Printf("Span:      %s to %s (%v)\n",
			first.Format(time.RFC3339), last.Format(time.RFC3339),
			last.Sub(first).Round(time.Millisecond))
	}
	for _, cat := range []tracelog.Category{
		tracelog.CategoryAccess, tracelog.CategoryReset,
		tracelog.CategoryBand, tracelog.CategoryAlert,
	} {
		if n := byCategory[cat]; n > 0 {
			fmt.Printf("  %-8s %d\n", cat.String()+":", n)
		}
	}
	fmt.Printf("Accepted:  %d\n", accepted)
	fmt.Printf("Rejected:  %d\n", rejected)
	fmt.Printf("Drained:   %d\n", drained)
}
