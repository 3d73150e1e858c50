// Package modules contains the concrete module implementations that
// compose onto a device: usage counters, energy metering, cloud state and
// lighting effects.
//
// Every module satisfies the device.Module contract: it contributes a query
// fragment to the aggregated poll, owns the features it exposes, and parses
// its own slice of the merged response. Modules hold a non-owning reference
// to their device; the device's module registry owns them.
//
// Emeter extends Usage by embedding rather than by a deep type hierarchy:
// it satisfies the same Module contract and additionally exposes the
// energy-specific operations (realtime readings, per-day and per-month
// statistics, stat erasure).
package modules
