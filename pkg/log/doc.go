// Package log provides structured protocol logging for smartlife devices.
//
// This package defines the Logger interface and Event type for capturing
// every request/response round-trip a device performs: the aggregated polls
// issued by Device.Update as well as direct write commands (set_relay_state,
// transition_light_state, set_lighting_effect, ...). It is separate from
// operational logging (slog) - protocol capture provides a complete
// machine-readable trace for debugging misbehaving firmware.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	dev := device.New(host, proto, device.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/smartlife/bulb.clog")
//	dev := device.New(host, proto, device.WithLogger(fl))
//
//	// Both: use MultiLogger
//	dev := device.New(host, proto, device.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	)))
//
// Events are CBOR-encoded with integer keys when written to file; the Reader
// type streams them back with optional filtering.
package log
