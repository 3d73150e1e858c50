package protocol

import "context"

// Protocol is the request/response channel to a single device.
//
// Query submits one request and returns the structured response matching the
// submitted request shape: a map keyed by target ("system",
// "smartlife.iot.common.emeter", ...) whose values are maps keyed by command.
// Implementations own framing, encryption and timeout policy; ctx covers the
// full round-trip.
type Protocol interface {
	Query(ctx context.Context, request map[string]any) (map[string]any, error)
}
