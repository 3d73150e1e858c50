// Package effects holds the built-in lighting effect catalog.
//
// The set of effects a firmware ships with varies between models and
// firmware revisions, so the catalog is configuration data rather than a
// compiled-in constant: a default catalog is embedded in the binary and
// applications can load replacements or extensions from YAML.
//
// Effect definitions are free-form mappings. The device accepts them
// verbatim through set_lighting_effect, and keeping them untyped means a
// catalog file can carry fields this library has never heard of.
package effects
