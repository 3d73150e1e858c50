package compat

import (
	"errors"
	"testing"
)

func TestResolveRenamed(t *testing.T) {
	tests := []struct {
		legacy string
		want   string
	}{
		{"SmartDevice", "device.Device"},
		{"SmartPlug", "plug.Plug"},
		{"SmartBulb", "bulb.Bulb"},
		{"SmartLightStrip", "bulb.LightStrip"},
		{"EmeterStatus", "modules.EmeterStatus"},
		{"TPLinkSmartHomeProtocol", "protocol.Protocol"},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.legacy)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.legacy, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.legacy, got, tt.want)
		}
	}
}

func TestResolveRemoved(t *testing.T) {
	for _, legacy := range []string{"SmartStrip", "Discover"} {
		_, err := Resolve(legacy)
		if !errors.Is(err, ErrRemoved) {
			t.Errorf("Resolve(%q) = %v, want ErrRemoved", legacy, err)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("SmartToaster")
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("Resolve(SmartToaster) = %v, want ErrUnknownName", err)
	}
}

func TestNamesCoversTable(t *testing.T) {
	names := Names()
	if len(names) != len(table) {
		t.Fatalf("Names() returned %d entries, table has %d", len(names), len(table))
	}
	for _, name := range names {
		if _, ok := table[name]; !ok {
			t.Errorf("Names() returned %q which is not in the table", name)
		}
	}
}
