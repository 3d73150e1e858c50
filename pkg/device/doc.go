// Package device implements the capability-composed device model.
//
// It is the core of the library: modules register against a Device,
// contribute query fragments to a single batched poll, and read their slice
// of the merged response back; the device owns the deduplicated feature
// registry and the structured info record that capability checks are
// evaluated against.
//
// # Composition model
//
// A Device is a container in the Device > Module > Feature hierarchy:
//
//   - Module: a self-contained unit of device functionality (energy
//     metering, lighting effects, cloud state). Each module declares the
//     query fragment it wants included in the next aggregated poll and
//     parses its own response slice.
//   - Feature: a named, typed unit of device state or action, exposed
//     uniformly to callers regardless of which module produced it. Feature
//     identity is its slugified name; registering a colliding slug is a
//     configuration error.
//
// # Update cycle
//
// Device.Update collects every registered module's query, merges the
// fragments with the baseline sysinfo query into one request, dispatches it
// through the protocol collaborator and splits the response back per module
// key. The update commits atomically: on any failure the previous state is
// retained unchanged, so readers never observe a half-updated device.
//
// Capability flags (IsColor, IsDimmable, IsVariableColorTemp, HasEffects)
// are pure functions over the current Info record, re-derived on every call
// rather than cached. Reading them before the first successful update
// returns ErrNotUpdated.
package device
