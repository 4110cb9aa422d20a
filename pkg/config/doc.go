// Package config loads panel configuration from YAML files.
//
// A configuration file describes the capacity, the pin assignments, the
// debounce and observer timing and the trace output:
//
//	capacity: 10
//	pins:
//	  entry: 5
//	  exit: 6
//	  reset: 22
//	timing:
//	  button_quiet_ms: 250
//	  reset_quiet_ms: 300
//	  poll_ms: 10
//	  display_ms: 200
//	  tone_ms: 50
//	  indicator_ms: 200
//	trace_file: panel.rlog
//	log_level: info
//
// Every field is optional; Default() supplies the reference values and
// Load applies the file on top of them. Command-line flags override both.
package config
