package modules

import "testing"

func TestEmeterStatusBaseUnits(t *testing.T) {
	status := EmeterStatus{
		"power":   12.5,
		"voltage": 231.2,
		"current": 0.054,
		"total":   1.234,
	}

	if v, ok := status.Power(); !ok || v != 12.5 {
		t.Errorf("Power() = %v, %v", v, ok)
	}
	if v, ok := status.Voltage(); !ok || v != 231.2 {
		t.Errorf("Voltage() = %v, %v", v, ok)
	}
	if v, ok := status.Current(); !ok || v != 0.054 {
		t.Errorf("Current() = %v, %v", v, ok)
	}
	if v, ok := status.Total(); !ok || v != 1.234 {
		t.Errorf("Total() = %v, %v", v, ok)
	}
}

func TestEmeterStatusMilliUnits(t *testing.T) {
	status := EmeterStatus{
		"power_mw":   float64(12500),
		"voltage_mv": float64(231200),
		"current_ma": float64(54),
		"total_wh":   float64(1234),
	}

	if v, ok := status.Power(); !ok || v != 12.5 {
		t.Errorf("Power() = %v, %v", v, ok)
	}
	if v, ok := status.Voltage(); !ok || v != 231.2 {
		t.Errorf("Voltage() = %v, %v", v, ok)
	}
	if v, ok := status.Current(); !ok || v != 0.054 {
		t.Errorf("Current() = %v, %v", v, ok)
	}
	if v, ok := status.Total(); !ok || v != 1.234 {
		t.Errorf("Total() = %v, %v", v, ok)
	}
}

func TestEmeterStatusBaseUnitWins(t *testing.T) {
	status := EmeterStatus{
		"power":    7.0,
		"power_mw": float64(99999),
	}

	if v, ok := status.Power(); !ok || v != 7.0 {
		t.Errorf("Power() = %v, %v", v, ok)
	}
}

func TestEmeterStatusMissingKeys(t *testing.T) {
	status := EmeterStatus{"err_code": float64(0)}

	if _, ok := status.Power(); ok {
		t.Error("Power() should report absence")
	}
	if _, ok := status.Total(); ok {
		t.Error("Total() should report absence")
	}
}
