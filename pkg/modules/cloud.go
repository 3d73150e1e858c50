package modules

import (
	"encoding/json"
	"fmt"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
)

// CloudInfo is the device's view of its cloud connection.
type CloudInfo struct {
	Binded        int    `json:"binded"`
	CldConnection int    `json:"cld_connection"`
	Server        string `json:"server"`
	Username      string `json:"username"`
	IllegalType   int    `json:"illegalType"`
	StopConnect   int    `json:"stopConnect"`
	TcspStatus    int    `json:"tcspStatus"`
}

// Cloud reports the device's cloud connection state.
type Cloud struct {
	dev *device.Device
	key string
}

// NewCloud creates a cloud module addressing the given protocol target
// (typically "cnCloud").
func NewCloud(dev *device.Device, key string) *Cloud {
	return &Cloud{dev: dev, key: key}
}

// Key implements device.Module.
func (c *Cloud) Key() string { return c.key }

// Query implements device.Module.
func (c *Cloud) Query() map[string]any {
	return map[string]any{
		c.key: map[string]any{"get_info": nil},
	}
}

// Features implements device.Module.
func (c *Cloud) Features() []*device.Feature {
	return []*device.Feature{
		device.NewFeature(&device.FeatureMetadata{
			Name:      "Cloud connection",
			Attribute: "is_connected",
			Module:    c.key,
			Kind:      device.KindSensor,
			Get: func() (any, error) {
				return c.IsConnected()
			},
		}),
	}
}

// Info returns the cloud connection info from the last update.
func (c *Cloud) Info() (*CloudInfo, error) {
	data, err := c.dev.ModuleData(c.key)
	if err != nil {
		return nil, err
	}
	result, ok := data["get_info"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: get_info missing from module data", device.ErrMalformedResponse)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var info CloudInfo
	if err := json.Unmarshal(encoded, &info); err != nil {
		return nil, fmt.Errorf("%w: cloud info does not decode: %v", device.ErrMalformedResponse, err)
	}
	return &info, nil
}

// IsConnected reports whether the device is bound to its cloud account.
func (c *Cloud) IsConnected() (bool, error) {
	info, err := c.Info()
	if err != nil {
		return false, err
	}
	return info.Binded != 0, nil
}
