package bulb

import (
	"context"
	"fmt"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
	"github.com/smartlife-protocol/smartlife-go/pkg/effects"
	"github.com/smartlife-protocol/smartlife-go/pkg/modules"
	"github.com/smartlife-protocol/smartlife-go/pkg/protocol"
)

// stripLightService is the light service target for strips, which control
// light state through a different service than bulbs do.
const stripLightService = "smartlife.iot.lightStrip"

// LightStrip is the facade for light strips. Strips work like bulbs but
// use their own light service and additionally expose strip length and
// lighting effects.
type LightStrip struct {
	*Bulb

	effect *modules.LightEffect
}

// NewLightStrip creates a light strip device. A nil catalog selects the
// embedded default effect catalog.
func NewLightStrip(host string, proto protocol.Protocol, catalog *effects.Catalog, opts ...device.Option) (*LightStrip, error) {
	b, err := newBulb(host, proto, stripLightService, "set_light_state", opts...)
	if err != nil {
		return nil, err
	}

	s := &LightStrip{Bulb: b}
	s.effect = modules.NewLightEffect(b.Device, catalog)
	if err := s.AddModule(s.effect); err != nil {
		return nil, err
	}
	return s, nil
}

// LightEffect returns the strip's effect module.
func (s *LightStrip) LightEffect() *modules.LightEffect { return s.effect }

// Length returns the number of segments in the strip.
func (s *LightStrip) Length() (int, error) {
	info, err := s.Info()
	if err != nil {
		return 0, err
	}
	if info.Length == nil {
		return 0, fmt.Errorf("%w: strip length", device.ErrUnsupported)
	}
	return *info.Length, nil
}

// HasEffects reports whether the strip supports lighting effects.
func (s *LightStrip) HasEffects() (bool, error) {
	info, err := s.Info()
	if err != nil {
		return false, err
	}
	return info.HasEffects(), nil
}

// Effect returns the active effect state.
func (s *LightStrip) Effect() (device.EffectState, error) {
	return s.effect.Effect()
}

// EffectList returns the built-in effect names, or nil when the strip does
// not support effects.
func (s *LightStrip) EffectList() ([]string, error) {
	return s.effect.EffectList()
}

// SetEffect applies a built-in effect by name, with optional overrides for
// brightness and transition.
func (s *LightStrip) SetEffect(ctx context.Context, name string, opts ...modules.EffectOption) error {
	return s.effect.SetEffect(ctx, name, opts...)
}

// SetCustomEffect applies a caller-supplied effect definition verbatim.
func (s *LightStrip) SetCustomEffect(ctx context.Context, effect effects.Effect) error {
	return s.effect.SetCustomEffect(ctx, effect)
}
