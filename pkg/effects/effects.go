package effects

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrMissingName = errors.New("effect definition has no name")
	ErrDuplicate   = errors.New("duplicate effect name")
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Effect is a single effect definition as sent to the device.
type Effect map[string]any

// Name returns the effect's display name, or "" if unnamed.
func (e Effect) Name() string {
	name, _ := e["name"].(string)
	return name
}

// Clone returns a shallow-plus-one-level copy of the effect, so callers can
// apply overrides without mutating the catalog entry.
func (e Effect) Clone() Effect {
	out := make(Effect, len(e))
	for k, v := range e {
		if nested, ok := v.([]any); ok {
			cp := make([]any, len(nested))
			copy(cp, nested)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Catalog is an ordered, name-indexed collection of effect definitions.
type Catalog struct {
	names   []string
	effects map[string]Effect
}

// catalogFile is the YAML shape of a catalog document.
type catalogFile struct {
	Effects []Effect `yaml:"effects"`
}

// Load reads a catalog from YAML. Every entry must carry a unique name.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse effect catalog: %w", err)
	}

	c := &Catalog{effects: make(map[string]Effect, len(file.Effects))}
	for _, effect := range file.Effects {
		name := effect.Name()
		if name == "" {
			return nil, ErrMissingName
		}
		if _, exists := c.effects[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
		c.names = append(c.names, name)
		c.effects[name] = effect
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(builtinCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded effect catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Get returns a copy of the named effect. The copy is safe to modify.
func (c *Catalog) Get(name string) (Effect, bool) {
	effect, ok := c.effects[name]
	if !ok {
		return nil, false
	}
	return effect.Clone(), true
}

// Names returns the effect names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of effects in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
