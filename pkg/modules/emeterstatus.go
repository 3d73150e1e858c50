package modules

// EmeterStatus is one realtime energy reading. Firmware generations
// disagree on units: some report base units ("power", "voltage", "total"),
// others milli-units ("power_mw", "voltage_mv", "total_wh"). The accessors
// normalize to watts, volts, amps and kilowatt-hours regardless of which
// convention the device used.
type EmeterStatus map[string]any

// Power returns the current power draw in watts.
func (s EmeterStatus) Power() (float64, bool) {
	return s.scaled("power", "power_mw", 1000)
}

// Voltage returns the current voltage in volts.
func (s EmeterStatus) Voltage() (float64, bool) {
	return s.scaled("voltage", "voltage_mv", 1000)
}

// Current returns the current in amps.
func (s EmeterStatus) Current() (float64, bool) {
	return s.scaled("current", "current_ma", 1000)
}

// Total returns the total accumulated consumption in kilowatt-hours.
func (s EmeterStatus) Total() (float64, bool) {
	return s.scaled("total", "total_wh", 1000)
}

// scaled reads the base-unit key if present, otherwise the milli-unit key
// divided by the given factor.
func (s EmeterStatus) scaled(baseKey, milliKey string, factor float64) (float64, bool) {
	if v, ok := asFloat(s[baseKey]); ok {
		return v, true
	}
	if v, ok := asFloat(s[milliKey]); ok {
		return v / factor, true
	}
	return 0, false
}
