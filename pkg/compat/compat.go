// Package compat maps identifiers from earlier releases of this library to
// their current locations.
//
// Earlier releases exposed a flat API with vendor-era type names. Instead
// of keeping alias types alive indefinitely, the old names live in an
// explicit table consulted at startup or in tooling; resolving one returns
// the new package-qualified name or a clear removal notice.
package compat

import (
	"errors"
	"fmt"
)

// Compatibility errors.
var (
	// ErrUnknownName is returned for identifiers this library never exposed.
	ErrUnknownName = errors.New("unknown identifier")

	// ErrRemoved is returned for identifiers that have no replacement.
	ErrRemoved = errors.New("identifier was removed")
)

// entry describes what happened to a legacy identifier.
type entry struct {
	replacement string
	note        string
}

// table is the complete legacy-name mapping. Append-only: once a name has
// shipped here its meaning never changes.
var table = map[string]entry{
	"SmartDevice":             {replacement: "device.Device"},
	"SmartPlug":               {replacement: "plug.Plug"},
	"SmartBulb":               {replacement: "bulb.Bulb"},
	"SmartLightStrip":         {replacement: "bulb.LightStrip"},
	"SmartStrip":              {note: "multi-socket strips are not supported by this release"},
	"EmeterStatus":            {replacement: "modules.EmeterStatus"},
	"SmartDeviceException":    {replacement: "device error sentinels (device.ErrUnsupported, device.ErrInvalidValue, ...)"},
	"TPLinkSmartHomeProtocol": {replacement: "protocol.Protocol"},
	"Discover":                {note: "discovery is out of scope; supply addresses from your own inventory"},
}

// Resolve maps a legacy identifier to its current package-qualified name.
// Removed identifiers return ErrRemoved with a migration note; names this
// library never exposed return ErrUnknownName.
func Resolve(name string) (string, error) {
	e, ok := table[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	if e.replacement == "" {
		return "", fmt.Errorf("%w: %s (%s)", ErrRemoved, name, e.note)
	}
	return e.replacement, nil
}

// Names returns every legacy identifier the table knows about.
func Names() []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	return out
}
