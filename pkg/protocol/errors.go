package protocol

import (
	"errors"
	"fmt"
)

// Boundary errors.
var (
	// ErrTransport marks failures where the request never completed.
	ErrTransport = errors.New("transport error")

	// ErrDevice marks responses where the device rejected the command.
	ErrDevice = errors.New("device error")
)

// TransportError wraps a connection-level failure (dial, timeout, broken
// stream). The underlying cause is available through errors.Unwrap.
type TransportError struct {
	Host string
	Err  error
}

// NewTransportError wraps err as a transport failure for the given host.
func NewTransportError(host string, err error) *TransportError {
	return &TransportError{Host: host, Err: err}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error communicating with %s: %v", e.Host, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target matches ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DeviceError reports a command the device answered but refused.
// Code is the raw err_code from the response slice.
type DeviceError struct {
	Command string
	Code    int
}

// NewDeviceError creates a DeviceError for the given command and code.
func NewDeviceError(command string, code int) *DeviceError {
	return &DeviceError{Command: command, Code: code}
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("device returned error %d for %s", e.Code, e.Command)
}

// Is reports whether target matches ErrDevice.
func (e *DeviceError) Is(target error) bool { return target == ErrDevice }
