package device

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartlife-protocol/smartlife-go/pkg/log"
	"github.com/smartlife-protocol/smartlife-go/pkg/protocol"
)

// Device is the capability-composed view of one physical device. It owns
// the module registry (modules do not own their device), the feature
// registry, and the last-update store the modules' data views are computed
// from.
type Device struct {
	host      string
	proto     protocol.Protocol
	logger    log.Logger
	sessionID string

	// updateMu serializes Update; a second update queues behind the
	// in-flight one instead of racing it for the blob replacement.
	updateMu sync.Mutex

	// mu guards the registries and the last-update store.
	mu          sync.RWMutex
	modules     map[string]Module
	moduleOrder []string
	features    map[string]*Feature
	lastUpdate  map[string]map[string]any
	info        *Info
	updated     bool
}

// Option configures a Device at construction time.
type Option func(*Device)

// WithLogger attaches a protocol event logger. All aggregated polls and
// write round-trips are reported to it.
func WithLogger(logger log.Logger) Option {
	return func(d *Device) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a device that communicates through the given protocol.
func New(host string, proto protocol.Protocol, opts ...Option) *Device {
	d := &Device{
		host:      host,
		proto:     proto,
		logger:    log.NoopLogger{},
		sessionID: uuid.NewString(),
		modules:   make(map[string]Module),
		features:  make(map[string]*Feature),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Host returns the device address the session talks to.
func (d *Device) Host() string { return d.host }

// SessionID returns the UUID identifying this device session in log events.
func (d *Device) SessionID() string { return d.sessionID }

// AddModule registers a module and the features it contributes. Duplicate
// module keys and duplicate feature slugs are configuration errors; on
// either, no registry is mutated.
func (d *Device) AddModule(m Module) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := m.Key()
	if _, exists := d.modules[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, key)
	}

	feats := m.Features()
	if err := d.checkFeatureSlugs(feats); err != nil {
		return err
	}

	d.modules[key] = m
	d.moduleOrder = append(d.moduleOrder, key)
	for _, f := range feats {
		d.features[f.Slug()] = f
	}
	return nil
}

// AddFeature registers a device-level feature. The slugified name must be
// unique across the whole device; collisions fail without mutating the
// registry.
func (d *Device) AddFeature(f *Feature) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkFeatureSlugs([]*Feature{f}); err != nil {
		return err
	}
	d.features[f.Slug()] = f
	return nil
}

// checkFeatureSlugs verifies the candidates collide neither with the
// registry nor with each other. Caller holds d.mu.
func (d *Device) checkFeatureSlugs(feats []*Feature) error {
	seen := make(map[string]struct{}, len(feats))
	for _, f := range feats {
		slug := f.Slug()
		if _, exists := d.features[slug]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateFeature, slug)
		}
		if _, dup := seen[slug]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateFeature, slug)
		}
		seen[slug] = struct{}{}
	}
	return nil
}

// Module returns a registered module by key.
func (d *Device) Module(key string) (Module, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.modules[key]
	return m, ok
}

// Features returns the feature registry keyed by slug.
func (d *Device) Features() map[string]*Feature {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]*Feature, len(d.features))
	for slug, f := range d.features {
		out[slug] = f
	}
	return out
}

// Feature returns a feature by slug.
func (d *Device) Feature(slug string) (*Feature, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.features[slug]
	return f, ok
}

// Update performs one aggregated poll: the baseline sysinfo query plus
// every registered module's query fragment, merged into a single request
// and dispatched in one round-trip. On success the whole last-update store
// and the info record are replaced together, so every feature and
// capability flag reflects the single response just received. On any
// failure the prior state is retained unchanged.
func (d *Device) Update(ctx context.Context) error {
	d.updateMu.Lock()
	defer d.updateMu.Unlock()

	request, err := d.buildUpdateRequest()
	if err != nil {
		return err
	}

	start := time.Now()
	d.logEvent(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryPoll,
		Size:      payloadSize(request),
	})

	response, err := d.proto.Query(ctx, request)
	if err != nil {
		d.logEvent(log.Event{
			Direction: log.DirectionIn,
			Category:  log.CategoryError,
			Duration:  time.Since(start),
			Error:     err.Error(),
		})
		return err
	}

	store := make(map[string]map[string]any, len(response))
	for target, slice := range response {
		m, ok := slice.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: target %q is not a map", ErrMalformedResponse, target)
		}
		store[target] = m
	}

	sysinfo, ok := store["system"]["get_sysinfo"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: get_sysinfo missing from response", ErrMalformedResponse)
	}
	info, err := decodeInfo(sysinfo)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.lastUpdate = store
	d.info = info
	d.updated = true
	d.mu.Unlock()

	d.logEvent(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryPoll,
		Size:      payloadSize(response),
		Duration:  time.Since(start),
	})
	return nil
}

// buildUpdateRequest merges the baseline sysinfo query with every module's
// fragment. Two fragments declaring the same target/command pair is a
// programming error, detected here rather than silently overwritten.
func (d *Device) buildUpdateRequest() (map[string]any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	request := map[string]any{
		"system": map[string]any{"get_sysinfo": nil},
	}

	for _, key := range d.moduleOrder {
		fragment := d.modules[key].Query()
		for target, commands := range fragment {
			cmdMap, ok := commands.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: module %s query for target %q is not a command map",
					ErrDuplicateQueryKey, key, target)
			}
			existing, ok := request[target].(map[string]any)
			if !ok {
				existing = make(map[string]any, len(cmdMap))
				request[target] = existing
			}
			for cmd, args := range cmdMap {
				if _, dup := existing[cmd]; dup {
					return nil, fmt.Errorf("%w: %s.%s requested twice", ErrDuplicateQueryKey, target, cmd)
				}
				existing[cmd] = args
			}
		}
	}
	return request, nil
}

// ModuleData returns the response slice for a module key from the last
// successful update. It fails with ErrNotUpdated until the first update
// completes.
func (d *Device) ModuleData(key string) (map[string]any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.updated {
		return nil, fmt.Errorf("%w: no data for %s", ErrNotUpdated, key)
	}
	slice, ok := d.lastUpdate[key]
	if !ok {
		return nil, fmt.Errorf("%w: no response slice for %s", ErrNotUpdated, key)
	}
	return slice, nil
}

// Info returns the structured record decoded from the last sysinfo payload.
func (d *Device) Info() (*Info, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.updated {
		return nil, ErrNotUpdated
	}
	return d.info, nil
}

// RawSysInfo returns the unparsed sysinfo map from the last update.
func (d *Device) RawSysInfo() (map[string]any, error) {
	info, err := d.Info()
	if err != nil {
		return nil, err
	}
	return info.Raw(), nil
}

// Alias returns the device's configured name.
func (d *Device) Alias() (string, error) {
	info, err := d.Info()
	if err != nil {
		return "", err
	}
	return info.Alias, nil
}

// Model returns the device model string.
func (d *Device) Model() (string, error) {
	info, err := d.Info()
	if err != nil {
		return "", err
	}
	return info.Model, nil
}

// QueryHelper issues a single-command round-trip outside the update cycle,
// checks the embedded err_code and returns the result with the code
// stripped. Write operations on the facades are built on this; they do not
// touch the last-update store.
func (d *Device) QueryHelper(ctx context.Context, target, cmd string, args any) (map[string]any, error) {
	request := map[string]any{target: map[string]any{cmd: args}}

	start := time.Now()
	d.logEvent(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryWrite,
		Target:    target,
		Command:   cmd,
		Size:      payloadSize(request),
	})

	response, err := d.proto.Query(ctx, request)
	if err != nil {
		d.logEvent(log.Event{
			Direction: log.DirectionIn,
			Category:  log.CategoryError,
			Target:    target,
			Command:   cmd,
			Duration:  time.Since(start),
			Error:     err.Error(),
		})
		return nil, err
	}

	slice, ok := response[target].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s missing from response", ErrMalformedResponse, target)
	}
	result, ok := slice[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s missing from response", ErrMalformedResponse, target, cmd)
	}

	out := map[string]any{}
	if resultMap, isMap := result.(map[string]any); isMap {
		for k, v := range resultMap {
			if k == "err_code" {
				code, _ := asInt(v)
				if code != 0 {
					devErr := protocol.NewDeviceError(cmd, code)
					d.logEvent(log.Event{
						Direction: log.DirectionIn,
						Category:  log.CategoryError,
						Target:    target,
						Command:   cmd,
						Duration:  time.Since(start),
						Error:     devErr.Error(),
					})
					return nil, devErr
				}
				continue
			}
			out[k] = v
		}
	} else if result != nil {
		// Some commands answer with null on success; anything else that is
		// not a map is malformed.
		return nil, fmt.Errorf("%w: %s.%s result is not a map", ErrMalformedResponse, target, cmd)
	}

	d.logEvent(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryWrite,
		Target:    target,
		Command:   cmd,
		Duration:  time.Since(start),
	})
	return out, nil
}

// logEvent fills in the session fields and hands the event to the logger.
func (d *Device) logEvent(event log.Event) {
	event.Timestamp = time.Now()
	event.SessionID = d.sessionID
	event.Host = d.host
	d.logger.Log(event)
}

// payloadSize is the JSON-encoded size of a request or response, for log
// events only.
func payloadSize(payload any) int {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0
	}
	return len(data)
}
