package modules

import "encoding/json"

// convertStatData normalizes a day_list/month_list series into a mapping
// from period key (day of month or month of year) to energy value in the
// requested unit.
//
// The incoming records look like
//
//	{"year": 2022, "month": 7, "day": 15, "energy_wh": 2}    // wh firmware
//	{"year": 2022, "month": 7, "day": 15, "energy": 0.002}   // kwh firmware
//
// Which unit the series carries is inferred once from the first record and
// applied uniformly; a series never mixes units. When key is non-nil only
// that period is wanted (typically today or the current month), so the
// series is scanned from the tail where the record usually sits, and
// records that would be discarded are never scaled.
func convertStatData(data []map[string]any, entryKey string, kwh bool, key *int) map[int]float64 {
	entries := map[int]float64{}
	if len(data) == 0 {
		return entries
	}

	scale := 1.0
	valueKey := "energy"
	if _, ok := data[0]["energy_wh"]; ok {
		valueKey = "energy_wh"
		if kwh {
			scale = 1.0 / 1000
		}
	} else if !kwh {
		scale = 1000
	}

	if key == nil {
		for _, entry := range data {
			k, ok := asInt(entry[entryKey])
			if !ok {
				continue
			}
			// A record without the inferred value key carries no reading;
			// skipping it keeps absent data distinct from zero consumption.
			v, ok := asFloat(entry[valueKey])
			if !ok {
				continue
			}
			entries[k] = v * scale
		}
		return entries
	}

	for i := len(data) - 1; i >= 0; i-- {
		k, ok := asInt(data[i][entryKey])
		if !ok || k != *key {
			continue
		}
		v, ok := asFloat(data[i][valueKey])
		if !ok {
			continue
		}
		entries[k] = v * scale
		return entries
	}
	return entries
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

// asFloat coerces JSON-decoded numeric values to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
