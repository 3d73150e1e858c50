// Package plug provides the facade for smart plugs and switches.
package plug

import (
	"context"
	"fmt"
	"time"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
	"github.com/smartlife-protocol/smartlife-go/pkg/modules"
	"github.com/smartlife-protocol/smartlife-go/pkg/protocol"
)

// Plug is the capability-gated facade for smart plugs. Relay control goes
// through the system target; energy metering and cloud state are composed
// on as modules.
type Plug struct {
	*device.Device

	emeter *modules.Emeter
	cloud  *modules.Cloud
}

// New creates a plug device with its emeter and cloud modules registered.
func New(host string, proto protocol.Protocol, opts ...device.Option) (*Plug, error) {
	p := &Plug{Device: device.New(host, proto, opts...)}

	p.emeter = modules.NewEmeter(p.Device, "emeter")
	if err := p.AddModule(p.emeter); err != nil {
		return nil, err
	}
	p.cloud = modules.NewCloud(p.Device, "cnCloud")
	if err := p.AddModule(p.cloud); err != nil {
		return nil, err
	}

	if err := p.AddFeature(device.NewFeature(&device.FeatureMetadata{
		Name:      "State",
		Attribute: "relay_state",
		Module:    "system",
		Kind:      device.KindSwitch,
		Get: func() (any, error) {
			return p.IsOn()
		},
		Set: func(ctx context.Context, value any) error {
			on, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%w: state must be a bool", device.ErrInvalidValue)
			}
			if on {
				return p.TurnOn(ctx)
			}
			return p.TurnOff(ctx)
		},
	})); err != nil {
		return nil, err
	}
	return p, nil
}

// Emeter returns the plug's energy metering module.
func (p *Plug) Emeter() *modules.Emeter { return p.emeter }

// Cloud returns the plug's cloud state module.
func (p *Plug) Cloud() *modules.Cloud { return p.cloud }

// IsOn reports whether the relay is closed.
func (p *Plug) IsOn() (bool, error) {
	info, err := p.Info()
	if err != nil {
		return false, err
	}
	return info.IsOn(), nil
}

// TurnOn closes the relay.
func (p *Plug) TurnOn(ctx context.Context) error {
	_, err := p.QueryHelper(ctx, "system", "set_relay_state", map[string]any{"state": 1})
	return err
}

// TurnOff opens the relay.
func (p *Plug) TurnOff(ctx context.Context) error {
	_, err := p.QueryHelper(ctx, "system", "set_relay_state", map[string]any{"state": 0})
	return err
}

// LED reports whether the status LED is enabled.
func (p *Plug) LED() (bool, error) {
	info, err := p.Info()
	if err != nil {
		return false, err
	}
	if info.LEDOff == nil {
		return false, fmt.Errorf("%w: status LED", device.ErrUnsupported)
	}
	return *info.LEDOff == 0, nil
}

// SetLED enables or disables the status LED.
func (p *Plug) SetLED(ctx context.Context, on bool) error {
	off := 1
	if on {
		off = 0
	}
	_, err := p.QueryHelper(ctx, "system", "set_led_off", map[string]any{"off": off})
	return err
}

// OnSince returns how long the relay has been closed, from the device's
// on_time counter.
func (p *Plug) OnSince() (time.Duration, error) {
	info, err := p.Info()
	if err != nil {
		return 0, err
	}
	if info.OnTime == nil {
		return 0, fmt.Errorf("%w: on-time counter", device.ErrUnsupported)
	}
	return time.Duration(*info.OnTime) * time.Second, nil
}
