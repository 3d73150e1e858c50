package device

import (
	"encoding/json"
	"fmt"
)

// Info is the structured view of the last sysinfo payload returned by the
// device. Capability-relevant fields are optional (pointers/slices) because
// firmware families report them differently: newer bulbs put hue and
// brightness at the top level, older ones nest them inside light_state, and
// plugs omit them entirely. The capability predicates below are pure
// functions over this record, re-evaluated on every call.
type Info struct {
	Alias      string `json:"alias"`
	Model      string `json:"model"`
	DeviceID   string `json:"deviceId"`
	DeviceType string `json:"type"`
	MicType    string `json:"mic_type"`
	SWVersion  string `json:"sw_ver"`
	HWVersion  string `json:"hw_ver"`
	MAC        string `json:"mac"`
	RSSI       *int   `json:"rssi"`

	// Plug/relay fields.
	RelayState *int `json:"relay_state"`
	OnTime     *int `json:"on_time"`
	LEDOff     *int `json:"led_off"`

	// Bulb fields. Promoted out of LightState when the firmware nests them.
	OnOff          *int           `json:"on_off"`
	Brightness     *int           `json:"brightness"`
	Hue            *int           `json:"hue"`
	Saturation     *int           `json:"saturation"`
	ColorTemp      *int           `json:"color_temp"`
	ColorTempRange []int          `json:"color_temp_range"`
	IsColorFlag    *int           `json:"is_color"`
	IsDimmableFlag *int           `json:"is_dimmable"`
	LightState     map[string]any `json:"light_state"`

	// Light strip fields.
	Length                   *int         `json:"length"`
	LightingEffectState      *EffectState `json:"lighting_effect_state"`
	DynamicLightEffectEnable *int         `json:"dynamic_light_effect_enable"`
	DynamicLightEffectID     string       `json:"dynamic_light_effect_id"`

	raw map[string]any
}

// EffectState is the active lighting effect as reported in sysinfo.
type EffectState struct {
	Enable     int    `json:"enable"`
	Name       string `json:"name"`
	ID         string `json:"id"`
	Custom     int    `json:"custom"`
	Brightness int    `json:"brightness"`
}

// decodeInfo builds an Info record from the raw sysinfo map.
func decodeInfo(raw map[string]any) (*Info, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sysinfo: %w", err)
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: sysinfo does not decode: %v", ErrMalformedResponse, err)
	}
	info.raw = raw
	info.promoteLightState()
	return &info, nil
}

// promoteLightState lifts nested light_state fields to the top level for
// firmware that reports bulb state there. Top-level values win.
func (i *Info) promoteLightState() {
	if i.LightState == nil {
		return
	}
	promote := func(dst **int, key string) {
		if *dst != nil {
			return
		}
		if v, ok := asInt(i.LightState[key]); ok {
			*dst = &v
		}
	}
	promote(&i.OnOff, "on_off")
	promote(&i.Hue, "hue")
	promote(&i.Saturation, "saturation")
	promote(&i.Brightness, "brightness")
	promote(&i.ColorTemp, "color_temp")
}

// Raw returns the unparsed sysinfo map the record was decoded from.
func (i *Info) Raw() map[string]any { return i.raw }

// IsColor reports whether the device supports color changes. Firmware
// either sets an explicit is_color flag or reports a hue value.
func (i *Info) IsColor() bool {
	if i.IsColorFlag != nil {
		return *i.IsColorFlag != 0
	}
	return i.Hue != nil
}

// IsDimmable reports whether the device supports brightness changes.
func (i *Info) IsDimmable() bool {
	if i.IsDimmableFlag != nil {
		return *i.IsDimmableFlag != 0
	}
	return i.Brightness != nil
}

// IsVariableColorTemp reports whether the device supports color temperature
// changes. Some firmware reports an equal min/max range while lacking real
// support, so a present range only counts when its bounds differ.
func (i *Info) IsVariableColorTemp() bool {
	if len(i.ColorTempRange) == 2 {
		return i.ColorTempRange[0] != i.ColorTempRange[1]
	}
	return false
}

// HasEffects reports whether the device supports lighting effects.
func (i *Info) HasEffects() bool {
	return i.LightingEffectState != nil || i.DynamicLightEffectEnable != nil
}

// IsOn reports whether the device output is on, from whichever of the
// relay/light fields the firmware populates.
func (i *Info) IsOn() bool {
	if i.RelayState != nil {
		return *i.RelayState != 0
	}
	if i.OnOff != nil {
		return *i.OnOff != 0
	}
	return false
}

// asInt coerces JSON-decoded numeric values to int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
