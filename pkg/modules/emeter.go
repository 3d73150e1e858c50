package modules

import (
	"context"
	"fmt"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
)

// Emeter is the energy metering module. It shares the usage module's query
// shape and period bucketing and adds energy-specific operations on top.
type Emeter struct {
	*Usage
}

// NewEmeter creates an emeter module addressing the given protocol target
// ("emeter" on plugs, "smartlife.iot.common.emeter" on bulbs and strips).
func NewEmeter(dev *device.Device, key string) *Emeter {
	return &Emeter{Usage: NewUsage(dev, key)}
}

// Features implements device.Module.
func (e *Emeter) Features() []*device.Feature {
	return []*device.Feature{
		device.NewFeature(&device.FeatureMetadata{
			Name:      "Current consumption",
			Attribute: "power",
			Module:    e.key,
			Kind:      device.KindSensor,
			Get: func() (any, error) {
				status, err := e.Realtime()
				if err != nil {
					return nil, err
				}
				power, _ := status.Power()
				return power, nil
			},
		}),
		device.NewFeature(&device.FeatureMetadata{
			Name:      "Today's consumption",
			Attribute: "today",
			Module:    e.key,
			Kind:      device.KindSensor,
			Get: func() (any, error) {
				v, ok, err := e.Today()
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, nil
				}
				return v, nil
			},
		}),
		device.NewFeature(&device.FeatureMetadata{
			Name:      "This month's consumption",
			Attribute: "this_month",
			Module:    e.key,
			Kind:      device.KindSensor,
			Get: func() (any, error) {
				v, ok, err := e.ThisMonth()
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, nil
				}
				return v, nil
			},
		}),
	}
}

// Realtime returns the most recent realtime reading from the last update.
func (e *Emeter) Realtime() (EmeterStatus, error) {
	data, err := e.Data()
	if err != nil {
		return nil, err
	}
	reading, ok := data["get_realtime"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: get_realtime missing from module data", device.ErrMalformedResponse)
	}
	return EmeterStatus(reading), nil
}

// Today returns today's consumption in kWh from the last update. The
// second return value is false when the device has no record for today yet.
func (e *Emeter) Today() (float64, bool, error) {
	raw, err := e.DailyData()
	if err != nil {
		return 0, false, err
	}
	day := e.now().Day()
	entries := convertStatData(raw, "day", true, &day)
	v, ok := entries[day]
	return v, ok, nil
}

// ThisMonth returns this month's consumption in kWh from the last update.
func (e *Emeter) ThisMonth() (float64, bool, error) {
	raw, err := e.MonthlyData()
	if err != nil {
		return 0, false, err
	}
	month := int(e.now().Month())
	entries := convertStatData(raw, "month", true, &month)
	v, ok := entries[month]
	return v, ok, nil
}

// DayStats fetches and normalizes the daily energy series for the given
// year and month (zero values default to the current period). The result
// maps day-of-month to energy, in kWh when kwh is true and Wh otherwise.
func (e *Emeter) DayStats(ctx context.Context, year, month int, kwh bool) (map[int]float64, error) {
	result, err := e.RawDayStats(ctx, year, month)
	if err != nil {
		return nil, err
	}
	records, err := statRecords(result, "day_list")
	if err != nil {
		return nil, err
	}
	return convertStatData(records, "day", kwh, nil), nil
}

// MonthStats fetches and normalizes the monthly energy series for the
// given year (zero defaults to the current one), keyed by month-of-year.
func (e *Emeter) MonthStats(ctx context.Context, year int, kwh bool) (map[int]float64, error) {
	result, err := e.RawMonthStats(ctx, year)
	if err != nil {
		return nil, err
	}
	records, err := statRecords(result, "month_list")
	if err != nil {
		return nil, err
	}
	return convertStatData(records, "month", kwh, nil), nil
}

// EraseStats erases all collected energy statistics on the device.
// The emeter uses a different command than the generic usage meter.
func (e *Emeter) EraseStats(ctx context.Context) error {
	_, err := e.Call(ctx, "erase_emeter_stat", nil)
	return err
}

// GetRealtime fetches a fresh realtime reading outside the update cycle.
func (e *Emeter) GetRealtime(ctx context.Context) (EmeterStatus, error) {
	result, err := e.Call(ctx, "get_realtime", nil)
	if err != nil {
		return nil, err
	}
	return EmeterStatus(result), nil
}

// statRecords converts a stripped command result into a record series.
func statRecords(result map[string]any, listKey string) ([]map[string]any, error) {
	raw, ok := result[listKey].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: response has no %s", device.ErrMalformedResponse, listKey)
	}
	records := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s entry is not a map", device.ErrMalformedResponse, listKey)
		}
		records = append(records, record)
	}
	return records, nil
}
