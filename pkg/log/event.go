package log

import "time"

// Event represents one protocol event: a request leaving the library or a
// response (or failure) coming back. CBOR encoding uses integer keys for
// compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the device session (UUID, assigned at
	// construction time).
	SessionID string `cbor:"2,keyasint"`

	// Host is the device address the session talks to.
	Host string `cbor:"3,keyasint,omitempty"`

	// Direction indicates message flow.
	Direction Direction `cbor:"4,keyasint"`

	// Category classifies the round-trip.
	Category Category `cbor:"5,keyasint"`

	// Target is the protocol namespace addressed by the request, e.g.
	// "system" or "smartlife.iot.common.emeter". Empty for aggregated polls
	// spanning several targets.
	Target string `cbor:"6,keyasint,omitempty"`

	// Command is the command within the target, e.g. "set_relay_state".
	// Empty for aggregated polls.
	Command string `cbor:"7,keyasint,omitempty"`

	// Size is the JSON-encoded payload size in bytes, when known.
	Size int `cbor:"8,keyasint,omitempty"`

	// Duration of the round-trip. Set on response events only.
	Duration time.Duration `cbor:"9,keyasint,omitempty"`

	// Error holds the failure text for error events.
	Error string `cbor:"10,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionOut indicates a request sent to the device.
	DirectionOut Direction = 0
	// DirectionIn indicates a response received from the device.
	DirectionIn Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "OUT"
	case DirectionIn:
		return "IN"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryPoll indicates an aggregated update poll.
	CategoryPoll Category = 0
	// CategoryWrite indicates a direct write command round-trip.
	CategoryWrite Category = 1
	// CategoryError indicates a failed round-trip.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPoll:
		return "POLL"
	case CategoryWrite:
		return "WRITE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
