// Package bulb provides the capability-gated facades for smart bulbs and
// light strips.
//
// A bulb is not modeled as a state machine. Every write operation is
// guarded by a capability predicate over the current info record and by
// range validation of its arguments; both checks happen synchronously,
// before any request is sent, and a failed guard is a terminal error. The
// three failure classes stay distinct:
//
//   - capability errors ("bulb does not support color") wrap
//     device.ErrUnsupported
//   - validation errors ("invalid brightness value") wrap
//     device.ErrInvalidValue
//   - transport and device errors propagate unchanged from the protocol
//     collaborator
package bulb
