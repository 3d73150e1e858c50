package modules

import (
	"math"
	"testing"
)

func statsEqual(t *testing.T, got, want map[int]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, w := range want {
		g, ok := got[k]
		if !ok || math.Abs(g-w) > 1e-9 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestConvertStatDataEmpty(t *testing.T) {
	got := convertStatData(nil, "day", true, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("empty input should yield an empty map, got %v", got)
	}

	got = convertStatData([]map[string]any{}, "day", true, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("empty input should yield an empty map, got %v", got)
	}
}

func TestConvertStatDataWhFirmware(t *testing.T) {
	data := []map[string]any{
		{"year": float64(2022), "month": float64(7), "day": float64(1), "energy_wh": float64(1)},
		{"year": float64(2022), "month": float64(7), "day": float64(2), "energy_wh": float64(2)},
	}

	statsEqual(t, convertStatData(data, "day", false, nil), map[int]float64{1: 1.0, 2: 2.0})
	statsEqual(t, convertStatData(data, "day", true, nil), map[int]float64{1: 0.001, 2: 0.002})
}

func TestConvertStatDataKwhFirmware(t *testing.T) {
	data := []map[string]any{
		{"year": float64(2022), "month": float64(7), "day": float64(1), "energy": 0.1},
		{"year": float64(2022), "month": float64(7), "day": float64(2), "energy": 5.0},
	}

	statsEqual(t, convertStatData(data, "day", true, nil), map[int]float64{1: 0.1, 2: 5.0})
	statsEqual(t, convertStatData(data, "day", false, nil), map[int]float64{1: 100.0, 2: 5000.0})
}

func TestConvertStatDataSingleKey(t *testing.T) {
	day := 2
	data := []map[string]any{
		{"day": float64(1), "energy": 0.1},
		{"day": float64(2), "energy": 5.0},
		{"day": float64(3), "energy": 0.3},
	}

	statsEqual(t, convertStatData(data, "day", false, &day), map[int]float64{2: 5000.0})
}

func TestConvertStatDataSingleKeyScansFromTail(t *testing.T) {
	// Duplicate period entries should never happen, but if they do the most
	// recent record wins.
	day := 2
	data := []map[string]any{
		{"day": float64(2), "energy": 1.0},
		{"day": float64(2), "energy": 5.0},
	}

	statsEqual(t, convertStatData(data, "day", false, &day), map[int]float64{2: 5000.0})
}

func TestConvertStatDataSingleKeyAbsent(t *testing.T) {
	day := 15
	data := []map[string]any{
		{"day": float64(1), "energy": 0.1},
	}

	got := convertStatData(data, "day", true, &day)
	if len(got) != 0 {
		t.Fatalf("absent key should yield an empty map, got %v", got)
	}
}

func TestConvertStatDataMonthSeries(t *testing.T) {
	data := []map[string]any{
		{"year": float64(2022), "month": float64(1), "energy_wh": float64(500)},
		{"year": float64(2022), "month": float64(2), "energy_wh": float64(1500)},
	}

	statsEqual(t, convertStatData(data, "month", true, nil), map[int]float64{1: 0.5, 2: 1.5})
}

func TestConvertStatDataSkipsRecordsWithoutKey(t *testing.T) {
	data := []map[string]any{
		{"day": float64(1), "energy": 0.1},
		{"energy": 0.2},
	}

	statsEqual(t, convertStatData(data, "day", true, nil), map[int]float64{1: 0.1})
}

func TestConvertStatDataSkipsRecordsWithoutValue(t *testing.T) {
	// A record for a period with no reading must stay absent, not report
	// zero consumption.
	data := []map[string]any{
		{"day": float64(1), "energy": 0.1},
		{"day": float64(2)},
	}

	statsEqual(t, convertStatData(data, "day", true, nil), map[int]float64{1: 0.1})
}

func TestConvertStatDataSingleKeySkipsValuelessMatch(t *testing.T) {
	day := 2
	data := []map[string]any{
		{"day": float64(2), "energy": 5.0},
		{"day": float64(2)},
	}

	statsEqual(t, convertStatData(data, "day", true, &day), map[int]float64{2: 5.0})

	got := convertStatData([]map[string]any{{"day": float64(2)}}, "day", true, &day)
	if len(got) != 0 {
		t.Fatalf("valueless record should yield an empty map, got %v", got)
	}
}
