package device

import "errors"

// Device model errors. The taxonomy matters to callers: configuration
// errors (duplicate registrations) indicate a programming mistake and are
// surfaced at registration/merge time; capability and validation errors are
// surfaced synchronously before any request is sent; staleness errors guard
// reads that happen before the first successful update. Transport and
// device errors from the protocol collaborator pass through unchanged.
var (
	// ErrDuplicateFeature is returned when a feature's slugified name
	// collides with one already in the registry.
	ErrDuplicateFeature = errors.New("duplicate feature name")

	// ErrDuplicateModule is returned when a module key is already registered.
	ErrDuplicateModule = errors.New("duplicate module key")

	// ErrDuplicateQueryKey is returned when two modules contribute the same
	// target/command pair to an aggregated poll.
	ErrDuplicateQueryKey = errors.New("duplicate query key")

	// ErrUnsupported is returned when an operation is invoked on a device
	// lacking the required capability.
	ErrUnsupported = errors.New("device does not support operation")

	// ErrInvalidValue is returned when a value is outside its allowed range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotUpdated guards reads performed before the first successful update.
	ErrNotUpdated = errors.New("device has not been updated")

	// ErrMalformedResponse is returned when a response does not match the
	// shape of the submitted request.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrFeatureReadOnly is returned when setting a feature with no setter.
	ErrFeatureReadOnly = errors.New("feature is read-only")
)
