package device

// Module is a self-contained unit of device functionality that participates
// in the aggregated poll. Concrete modules (energy metering, lighting
// effects, cloud state) satisfy this contract; the update aggregator is
// fully agnostic to which concrete module it holds.
type Module interface {
	// Key is the protocol target the module's queries are addressed to,
	// e.g. "emeter" or "smartlife.iot.common.emeter". Module keys are
	// unique within one device.
	Key() string

	// Query returns the request fragment the module wants included in the
	// next aggregated poll, keyed by target then command. Query must be a
	// pure function of the module's static configuration: idempotent,
	// side-effect-free, and callable speculatively without committing to a
	// dispatch. Modules whose state lives in sysinfo return an empty map.
	Query() map[string]any

	// Features returns the features the module contributes. Called once
	// when the module is attached; the device owns the resulting registry.
	Features() []*Feature
}
