package device

import (
	"context"
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Total Energy", "total_energy"},
		{"Today's consumption", "todays_consumption"},
		{"Cloud connection", "cloud_connection"},
		{"brightness", "brightness"},
	}

	for _, tt := range tests {
		if got := slugify(tt.name); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFeatureAccessors(t *testing.T) {
	f := NewFeature(&FeatureMetadata{
		Name:      "Light effect",
		Attribute: "effect",
		Module:    "smartlife.iot.lighting_effect",
		Kind:      KindChoice,
		Choices:   []string{"Aurora", "Party"},
		Get:       func() (any, error) { return "Aurora", nil },
	})

	if f.Name() != "Light effect" {
		t.Errorf("unexpected name %q", f.Name())
	}
	if f.Slug() != "light_effect" {
		t.Errorf("unexpected slug %q", f.Slug())
	}
	if f.Attribute() != "effect" {
		t.Errorf("unexpected attribute %q", f.Attribute())
	}
	if f.Module() != "smartlife.iot.lighting_effect" {
		t.Errorf("unexpected module %q", f.Module())
	}
	if f.Kind() != KindChoice {
		t.Errorf("unexpected kind %v", f.Kind())
	}

	v, err := f.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "Aurora" {
		t.Errorf("unexpected value %v", v)
	}

	// Choices is a copy; callers cannot mutate the feature through it.
	choices := f.Choices()
	choices[0] = "mutated"
	if f.Choices()[0] != "Aurora" {
		t.Error("Choices leaked internal state")
	}
}

func TestFeatureReadOnly(t *testing.T) {
	f := NewFeature(&FeatureMetadata{
		Name: "Current consumption",
		Kind: KindSensor,
		Get:  func() (any, error) { return 12.5, nil },
	})

	err := f.SetValue(context.Background(), 1)
	if !errors.Is(err, ErrFeatureReadOnly) {
		t.Errorf("expected ErrFeatureReadOnly, got %v", err)
	}
}

func TestFeatureSetter(t *testing.T) {
	var got any
	f := NewFeature(&FeatureMetadata{
		Name: "State",
		Kind: KindSwitch,
		Get:  func() (any, error) { return true, nil },
		Set: func(_ context.Context, value any) error {
			got = value
			return nil
		},
	})

	if err := f.SetValue(context.Background(), false); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if got != false {
		t.Errorf("setter received %v", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSensor, "Sensor"},
		{KindSwitch, "Switch"},
		{KindChoice, "Choice"},
		{KindAction, "Action"},
		{Kind(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
