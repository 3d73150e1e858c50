package bulb

import (
	"context"
	"fmt"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
	"github.com/smartlife-protocol/smartlife-go/pkg/modules"
	"github.com/smartlife-protocol/smartlife-go/pkg/protocol"
)

// Bulb light service targets. Light strips use a different service for the
// same commands.
const (
	bulbLightService  = "smartlife.iot.smartbulb.lightingservice"
	bulbEmeterService = "smartlife.iot.common.emeter"
)

// HSV is a bulb color state: hue in degrees, saturation and value in percent.
type HSV struct {
	Hue        int
	Saturation int
	Value      int
}

// ColorTempRange is the device-reported white temperature range in Kelvin.
type ColorTempRange struct {
	Min int
	Max int
}

// Bulb is the capability-gated facade for smart bulbs.
type Bulb struct {
	*device.Device

	lightService string
	setLightCmd  string
	emeter       *modules.Emeter
}

// New creates a bulb device with its energy metering module registered.
func New(host string, proto protocol.Protocol, opts ...device.Option) (*Bulb, error) {
	return newBulb(host, proto, bulbLightService, "transition_light_state", opts...)
}

// newBulb builds the shared bulb facade. The light service must be final
// here: registered feature metadata carries it as the module key.
func newBulb(host string, proto protocol.Protocol, lightService, setLightCmd string, opts ...device.Option) (*Bulb, error) {
	b := &Bulb{
		Device:       device.New(host, proto, opts...),
		lightService: lightService,
		setLightCmd:  setLightCmd,
	}
	b.emeter = modules.NewEmeter(b.Device, bulbEmeterService)
	if err := b.AddModule(b.emeter); err != nil {
		return nil, err
	}
	if err := b.AddFeature(device.NewFeature(&device.FeatureMetadata{
		Name:      "Brightness",
		Attribute: "brightness",
		Module:    lightService,
		Kind:      device.KindSensor,
		Get: func() (any, error) {
			return b.Brightness()
		},
		Set: func(ctx context.Context, value any) error {
			brightness, ok := value.(int)
			if !ok {
				return fmt.Errorf("%w: brightness must be an int", device.ErrInvalidValue)
			}
			return b.SetBrightness(ctx, brightness)
		},
	})); err != nil {
		return nil, err
	}
	return b, nil
}

// Emeter returns the bulb's energy metering module.
func (b *Bulb) Emeter() *modules.Emeter { return b.emeter }

// IsColor reports whether the bulb supports color changes.
func (b *Bulb) IsColor() (bool, error) {
	info, err := b.Info()
	if err != nil {
		return false, err
	}
	return info.IsColor(), nil
}

// IsDimmable reports whether the bulb supports brightness changes.
func (b *Bulb) IsDimmable() (bool, error) {
	info, err := b.Info()
	if err != nil {
		return false, err
	}
	return info.IsDimmable(), nil
}

// IsVariableColorTemp reports whether the bulb supports color temperature
// changes.
func (b *Bulb) IsVariableColorTemp() (bool, error) {
	info, err := b.Info()
	if err != nil {
		return false, err
	}
	return info.IsVariableColorTemp(), nil
}

// ValidTemperatureRange returns the device-reported white temperature
// range in Kelvin. It fails with a capability error when temperature is
// not variable, so it is not safe to call unconditionally. A reported
// range with equal bounds counts as not variable.
func (b *Bulb) ValidTemperatureRange() (ColorTempRange, error) {
	info, err := b.Info()
	if err != nil {
		return ColorTempRange{}, err
	}
	if !info.IsVariableColorTemp() {
		return ColorTempRange{}, fmt.Errorf("%w: color temperature", device.ErrUnsupported)
	}
	return ColorTempRange{Min: info.ColorTempRange[0], Max: info.ColorTempRange[1]}, nil
}

// HSV returns the current color state.
func (b *Bulb) HSV() (HSV, error) {
	info, err := b.Info()
	if err != nil {
		return HSV{}, err
	}
	if !info.IsColor() {
		return HSV{}, fmt.Errorf("%w: color", device.ErrUnsupported)
	}

	out := HSV{}
	if info.Hue != nil {
		out.Hue = *info.Hue
	}
	if info.Saturation != nil {
		out.Saturation = *info.Saturation
	}
	if info.Brightness != nil {
		out.Value = *info.Brightness
	}
	return out, nil
}

// ColorTemp returns the current color temperature in Kelvin.
func (b *Bulb) ColorTemp() (int, error) {
	info, err := b.Info()
	if err != nil {
		return 0, err
	}
	if !info.IsVariableColorTemp() {
		return 0, fmt.Errorf("%w: color temperature", device.ErrUnsupported)
	}
	if info.ColorTemp == nil {
		return 0, nil
	}
	return *info.ColorTemp, nil
}

// Brightness returns the current brightness in percent.
func (b *Bulb) Brightness() (int, error) {
	info, err := b.Info()
	if err != nil {
		return 0, err
	}
	if !info.IsDimmable() {
		return 0, fmt.Errorf("%w: dimming", device.ErrUnsupported)
	}
	if info.Brightness == nil {
		return 0, nil
	}
	return *info.Brightness, nil
}

// SetHSV sets a new color. Hue is in degrees [0, 360], saturation in
// percent [0, 100]. A non-nil value sets brightness as well. The payload
// resets color_temp to 0 so hue and saturation take precedence.
func (b *Bulb) SetHSV(ctx context.Context, hue, saturation int, value *int) error {
	info, err := b.Info()
	if err != nil {
		return err
	}
	if !info.IsColor() {
		return fmt.Errorf("%w: color", device.ErrUnsupported)
	}

	if hue < 0 || hue > 360 {
		return fmt.Errorf("%w: invalid hue %d (valid range: 0-360)", device.ErrInvalidValue, hue)
	}
	if saturation < 0 || saturation > 100 {
		return fmt.Errorf("%w: invalid saturation %d (valid range: 0-100%%)", device.ErrInvalidValue, saturation)
	}
	if value != nil {
		if err := validateBrightness(*value); err != nil {
			return err
		}
	}

	state := map[string]any{
		"color_temp": 0, // hue and saturation take precedence when unset
		"hue":        hue,
		"saturation": saturation,
	}
	// The device errors on invalid brightness values, so it is only
	// included when the caller asked for it.
	if value != nil {
		state["brightness"] = *value
	}
	_, err = b.QueryHelper(ctx, b.lightService, b.setLightCmd, state)
	return err
}

// SetColorTemp sets the color temperature in Kelvin. The value must fall
// inside the device-reported range.
func (b *Bulb) SetColorTemp(ctx context.Context, temp int) error {
	info, err := b.Info()
	if err != nil {
		return err
	}
	if !info.IsVariableColorTemp() {
		return fmt.Errorf("%w: color temperature", device.ErrUnsupported)
	}

	valid := ColorTempRange{Min: info.ColorTempRange[0], Max: info.ColorTempRange[1]}
	if temp < valid.Min || temp > valid.Max {
		return fmt.Errorf("%w: temperature %d not in range %d-%d", device.ErrInvalidValue, temp, valid.Min, valid.Max)
	}

	_, err = b.QueryHelper(ctx, b.lightService, b.setLightCmd, map[string]any{"color_temp": temp})
	return err
}

// SetBrightness sets the brightness in percent [1, 100].
func (b *Bulb) SetBrightness(ctx context.Context, brightness int) error {
	info, err := b.Info()
	if err != nil {
		return err
	}
	if !info.IsDimmable() {
		return fmt.Errorf("%w: dimming", device.ErrUnsupported)
	}
	if err := validateBrightness(brightness); err != nil {
		return err
	}

	_, err = b.QueryHelper(ctx, b.lightService, b.setLightCmd, map[string]any{"brightness": brightness})
	return err
}

// IsOn reports whether the bulb is emitting light.
func (b *Bulb) IsOn() (bool, error) {
	info, err := b.Info()
	if err != nil {
		return false, err
	}
	return info.IsOn(), nil
}

// TurnOn switches the bulb on.
func (b *Bulb) TurnOn(ctx context.Context) error {
	_, err := b.QueryHelper(ctx, b.lightService, b.setLightCmd, map[string]any{"on_off": 1})
	return err
}

// TurnOff switches the bulb off.
func (b *Bulb) TurnOff(ctx context.Context) error {
	_, err := b.QueryHelper(ctx, b.lightService, b.setLightCmd, map[string]any{"on_off": 0})
	return err
}

// validateBrightness checks the shared brightness range.
func validateBrightness(brightness int) error {
	if brightness < 1 || brightness > 100 {
		return fmt.Errorf("%w: invalid brightness %d (valid range: 1-100%%)", device.ErrInvalidValue, brightness)
	}
	return nil
}
