package modules

import (
	"context"
	"fmt"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
	"github.com/smartlife-protocol/smartlife-go/pkg/effects"
)

// LightEffectKey is the protocol target for effect application.
const LightEffectKey = "smartlife.iot.lighting_effect"

// LightEffect applies built-in and custom lighting effects. Effect state
// lives in sysinfo, so the module contributes nothing to the aggregated
// poll; application goes through its own write command.
type LightEffect struct {
	dev     *device.Device
	catalog *effects.Catalog
}

// NewLightEffect creates a lighting effect module. A nil catalog selects
// the embedded default catalog.
func NewLightEffect(dev *device.Device, catalog *effects.Catalog) *LightEffect {
	if catalog == nil {
		catalog = effects.Default()
	}
	return &LightEffect{dev: dev, catalog: catalog}
}

// Key implements device.Module.
func (l *LightEffect) Key() string { return LightEffectKey }

// Query implements device.Module. Effect state is part of sysinfo, so no
// extra fragment is needed.
func (l *LightEffect) Query() map[string]any { return map[string]any{} }

// Features implements device.Module.
func (l *LightEffect) Features() []*device.Feature {
	return []*device.Feature{
		device.NewFeature(&device.FeatureMetadata{
			Name:      "Light effect",
			Attribute: "effect",
			Module:    LightEffectKey,
			Kind:      device.KindChoice,
			Choices:   l.catalog.Names(),
			Get: func() (any, error) {
				state, err := l.Effect()
				if err != nil {
					return nil, err
				}
				return state.Name, nil
			},
			Set: func(ctx context.Context, value any) error {
				name, ok := value.(string)
				if !ok {
					return fmt.Errorf("%w: effect name must be a string", device.ErrInvalidValue)
				}
				return l.SetEffect(ctx, name)
			},
		}),
	}
}

// Effect returns the active effect state from the last update.
func (l *LightEffect) Effect() (device.EffectState, error) {
	info, err := l.dev.Info()
	if err != nil {
		return device.EffectState{}, err
	}
	if info.LightingEffectState == nil {
		return device.EffectState{}, fmt.Errorf("%w: lighting effects", device.ErrUnsupported)
	}
	return *info.LightingEffectState, nil
}

// EffectList returns the built-in effect names, or nil when the device
// does not support effects.
func (l *LightEffect) EffectList() ([]string, error) {
	info, err := l.dev.Info()
	if err != nil {
		return nil, err
	}
	if !info.HasEffects() {
		return nil, nil
	}
	return l.catalog.Names(), nil
}

// EffectOption overrides an effect-specific default at application time.
type EffectOption func(effects.Effect)

// WithBrightness overrides the effect's default brightness.
func WithBrightness(brightness int) EffectOption {
	return func(e effects.Effect) {
		e["brightness"] = brightness
	}
}

// WithTransition overrides the effect's default transition, in milliseconds.
func WithTransition(transition int) EffectOption {
	return func(e effects.Effect) {
		e["transition"] = transition
	}
}

// SetEffect applies a built-in effect by name. The name must resolve in
// the catalog; overrides are merged into a copy of the canonical
// definition, which is then applied as a custom effect.
func (l *LightEffect) SetEffect(ctx context.Context, name string, opts ...EffectOption) error {
	info, err := l.dev.Info()
	if err != nil {
		return err
	}
	if !info.HasEffects() {
		return fmt.Errorf("%w: lighting effects", device.ErrUnsupported)
	}

	effect, ok := l.catalog.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q is not a built-in effect", device.ErrInvalidValue, name)
	}
	for _, opt := range opts {
		opt(effect)
	}
	return l.SetCustomEffect(ctx, effect)
}

// SetCustomEffect applies a caller-supplied effect definition. Beyond the
// capability check the definition is forwarded verbatim; the device is the
// authority on whether it is acceptable.
func (l *LightEffect) SetCustomEffect(ctx context.Context, effect effects.Effect) error {
	info, err := l.dev.Info()
	if err != nil {
		return err
	}
	if !info.HasEffects() {
		return fmt.Errorf("%w: lighting effects", device.ErrUnsupported)
	}

	_, err = l.dev.QueryHelper(ctx, LightEffectKey, "set_lighting_effect", map[string]any(effect))
	return err
}
