package device

import (
	"context"
	"strings"
)

// Kind classifies how a feature should be presented to callers.
type Kind uint8

const (
	// KindSensor is a read-only value.
	KindSensor Kind = iota
	// KindSwitch is a boolean read/write value.
	KindSwitch
	// KindChoice is a value restricted to a fixed set of options.
	KindChoice
	// KindAction is an invokable operation with no persistent value.
	KindAction
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSensor:
		return "Sensor"
	case KindSwitch:
		return "Switch"
	case KindChoice:
		return "Choice"
	case KindAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// FeatureMetadata describes a feature at construction time.
type FeatureMetadata struct {
	// Name is the human-readable feature name. The slugified form is the
	// feature's identity within a device registry.
	Name string

	// Attribute identifies the underlying device attribute, e.g. "brightness".
	Attribute string

	// Module is the key of the module that produced the feature.
	Module string

	// Kind classifies the feature.
	Kind Kind

	// Choices restricts KindChoice features to a fixed option set.
	Choices []string

	// Get reads the current value. Required.
	Get func() (any, error)

	// Set writes a new value. Nil for read-only features.
	Set func(ctx context.Context, value any) error
}

// Feature is an immutable named, typed unit of device state exposed to
// callers independently of which module produced it. Features are created
// once when a module is attached to a device and never change afterwards.
type Feature struct {
	meta FeatureMetadata
	slug string
}

// NewFeature creates a feature from its metadata.
func NewFeature(meta *FeatureMetadata) *Feature {
	return &Feature{
		meta: *meta,
		slug: slugify(meta.Name),
	}
}

// Name returns the human-readable feature name.
func (f *Feature) Name() string { return f.meta.Name }

// Slug returns the feature identity: the name lowercased, with spaces
// replaced by underscores and apostrophes stripped.
func (f *Feature) Slug() string { return f.slug }

// Attribute returns the underlying attribute identifier.
func (f *Feature) Attribute() string { return f.meta.Attribute }

// Module returns the key of the module that produced the feature.
func (f *Feature) Module() string { return f.meta.Module }

// Kind returns the feature kind.
func (f *Feature) Kind() Kind { return f.meta.Kind }

// Choices returns the option set for KindChoice features.
func (f *Feature) Choices() []string {
	out := make([]string, len(f.meta.Choices))
	copy(out, f.meta.Choices)
	return out
}

// Value reads the current feature value.
func (f *Feature) Value() (any, error) {
	return f.meta.Get()
}

// SetValue writes a new feature value. Read-only features return
// ErrFeatureReadOnly.
func (f *Feature) SetValue(ctx context.Context, value any) error {
	if f.meta.Set == nil {
		return ErrFeatureReadOnly
	}
	return f.meta.Set(ctx, value)
}

// slugify normalizes a feature name into its registry identity.
func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}
