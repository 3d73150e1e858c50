// Package protocol defines the boundary between the device model and the
// vendor wire protocol.
//
// The device core talks to hardware exclusively through the Protocol
// interface: a single request/response operation over JSON-shaped maps.
// Transport framing, encryption handshakes, retries and timeouts all live
// behind that interface and are supplied by the application.
//
// Failures at the boundary come in two flavors that callers may need to
// tell apart:
//
//   - TransportError: the request never completed (connection refused,
//     timeout, broken stream).
//   - DeviceError: the device answered but rejected the command, reporting
//     a non-zero error code.
//
// Both propagate unchanged through Device.Update and through direct write
// operations; the core never retries on its own.
package protocol
